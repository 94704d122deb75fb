// Package render paints slides onto a fixed-size 2D surface: background,
// theme decoration, drop-shadowed title, word-wrapped content with bullet
// glyphs, and an accent border. Rendering is pure; the only fallback is
// unknown themes resolving to the default.
package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// Renderer paints slides at a fixed resolution.
type Renderer struct {
	width  int
	height int
	themes *theme.Registry
	faces  *faceCache
}

// New creates a renderer. Width and height default to 1280x720 when zero.
func New(width, height int, themes *theme.Registry) (*Renderer, error) {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	faces, err := newFaceCache()
	if err != nil {
		return nil, err
	}
	return &Renderer{width: width, height: height, themes: themes, faces: faces}, nil
}

// Render paints one slide and returns the image.
func (r *Renderer) Render(s *deck.Slide) (image.Image, error) {
	dc := gg.NewContext(r.width, r.height)
	th := r.themes.Resolve(s.ThemeName())

	w := float64(r.width)
	h := float64(r.height)

	// Scale theme positions from the 1280x720 reference surface.
	sx := w / 1280
	sy := h / 720

	r.paintBackground(dc, th, s, w, h)
	decorationFor(th.Name)(dc, th, w, h)

	if err := r.paintTitle(dc, th, s, sx, sy); err != nil {
		return nil, err
	}
	if err := r.paintContent(dc, th, s, w, sx, sy); err != nil {
		return nil, err
	}

	// Closing border stroke in the accent color.
	dc.SetColor(hexOr(accentColor(th, s), color.RGBA{0, 0, 0, 255}))
	dc.SetLineWidth(4)
	dc.DrawRectangle(8, 8, w-16, h-16)
	dc.Stroke()

	return dc.Image(), nil
}

// RenderPNG paints one slide and writes it to path.
func (r *Renderer) RenderPNG(s *deck.Slide, path string) error {
	img, err := r.Render(s)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func (r *Renderer) paintBackground(dc *gg.Context, th *theme.Theme, s *deck.Slide, w, h float64) {
	bg := th.BackgroundColor
	if s.BackgroundColor != "" {
		bg = s.BackgroundColor
	}

	if theme.IsGradient(bg) {
		if g, ok := theme.LookupGradient(bg); ok {
			dc.SetFillStyle(buildGradient(g, w, h))
			dc.DrawRectangle(0, 0, w, h)
			dc.Fill()
			return
		}
	}

	dc.SetColor(hexOr(bg, color.RGBA{255, 255, 255, 255}))
	dc.Clear()
}

// buildGradient translates a gradient recipe to a gg pattern.
func buildGradient(g theme.Gradient, w, h float64) gg.Pattern {
	if g.Kind == theme.Radial {
		grad := gg.NewRadialGradient(w/2, h/2, 0, w/2, h/2, math.Max(w, h)*0.7)
		for _, stop := range g.Stops {
			grad.AddColorStop(stop.Offset, hexOr(stop.Color, color.RGBA{A: 255}))
		}
		return grad
	}

	rad := g.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	half := (math.Abs(dx)*w + math.Abs(dy)*h) / 2
	cx, cy := w/2, h/2

	grad := gg.NewLinearGradient(cx-dx*half, cy-dy*half, cx+dx*half, cy+dy*half)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, hexOr(stop.Color, color.RGBA{A: 255}))
	}
	return grad
}

func (r *Renderer) paintTitle(dc *gg.Context, th *theme.Theme, s *deck.Slide, sx, sy float64) error {
	if strings.TrimSpace(s.Title) == "" {
		return nil
	}

	size := th.TitleFont.Size
	x, y := th.TitlePosition.X, th.TitlePosition.Y
	if s.TitleStyle != nil {
		if s.TitleStyle.FontSize > 0 {
			size = s.TitleStyle.FontSize
		}
		if s.TitleStyle.X > 0 {
			x = s.TitleStyle.X
		}
		if s.TitleStyle.Y > 0 {
			y = s.TitleStyle.Y
		}
	}

	face, err := r.faces.face(true, size*sx)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	// Fixed drop shadow behind the title.
	dc.SetRGBA(0, 0, 0, 0.35)
	dc.DrawStringAnchored(s.Title, x*sx+3, y*sy+3, 0.5, 0.5)

	dc.SetColor(hexOr(textColor(th, s), color.RGBA{0, 0, 0, 255}))
	dc.DrawStringAnchored(s.Title, x*sx, y*sy, 0.5, 0.5)
	return nil
}

func (r *Renderer) paintContent(dc *gg.Context, th *theme.Theme, s *deck.Slide, w, sx, sy float64) error {
	if strings.TrimSpace(s.Content) == "" {
		return nil
	}

	size := th.ContentFont.Size
	x, y := th.ContentPosition.X, th.ContentPosition.Y
	if s.ContentStyle != nil {
		if s.ContentStyle.FontSize > 0 {
			size = s.ContentStyle.FontSize
		}
		if s.ContentStyle.X > 0 {
			x = s.ContentStyle.X
		}
		if s.ContentStyle.Y > 0 {
			y = s.ContentStyle.Y
		}
	}
	size *= sx
	x *= sx
	y *= sy

	face, err := r.faces.face(false, size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	fg := hexOr(textColor(th, s), color.RGBA{0, 0, 0, 255})
	accent := hexOr(accentColor(th, s), fg)

	lineHeight := size * 1.5
	bulletIndent := size * 1.2
	maxWidth := w - x - 80*sx

	cursor := y
	for _, line := range strings.Split(s.Content, "\n") {
		text, bullet := stripBullet(line)
		if strings.TrimSpace(text) == "" {
			cursor += lineHeight * 0.6
			continue
		}

		indent := 0.0
		if bullet {
			indent = bulletIndent
			dc.SetColor(accent)
			dc.DrawCircle(x+size*0.3, cursor+size*0.55, size*0.18)
			dc.Fill()
		}

		dc.SetColor(fg)
		for _, wrapped := range dc.WordWrap(text, maxWidth-indent) {
			dc.DrawString(wrapped, x+indent, cursor+size)
			cursor += lineHeight
		}
	}
	return nil
}

// stripBullet removes a leading bullet marker and reports whether one was
// present.
func stripBullet(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range []string{"• ", "- ", "* ", "•", "-", "*"} {
		if strings.HasPrefix(trimmed, marker) {
			rest := strings.TrimPrefix(trimmed, marker)
			if strings.TrimSpace(rest) == "" {
				return rest, false
			}
			return strings.TrimSpace(rest), true
		}
	}
	return trimmed, false
}

func textColor(th *theme.Theme, s *deck.Slide) string {
	if s.TextColor != "" {
		return s.TextColor
	}
	return th.TextColor
}

func accentColor(th *theme.Theme, s *deck.Slide) string {
	if s.AccentColor != "" {
		return s.AccentColor
	}
	return th.AccentColor
}

// hexOr parses a hex color, falling back when the value is malformed.
func hexOr(s string, fallback color.RGBA) color.RGBA {
	if c, ok := theme.ParseHex(s); ok {
		return c
	}
	return fallback
}
