package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// decorationFunc draws a theme's background ornamentation. Routines run
// after the background fill and before any text.
type decorationFunc func(dc *gg.Context, th *theme.Theme, w, h float64)

// decorations is the name-keyed dispatch table. Themes without an entry
// get the default routine. These are the representative styles; the full
// hand-authored set grows here one routine at a time.
var decorations = map[string]decorationFunc{
	"minimal-clean":    drawTitleRule,
	"minimal-ink":      drawCornerStroke,
	"corporate-navy":   drawFooterBar,
	"corporate-slate":  drawHeaderStripe,
	"tech-circuit":     drawCircuitTraces,
	"tech-terminal":    drawScanlines,
	"tech-blueprint":   drawBlueprintGrid,
	"creative-splash":  drawConfetti,
	"vibrant-festival": drawConfetti,
	"dark-nebula":      drawStarField,
	"dark-midnight":    drawStarField,
	"retro-wave":       drawHorizonGrid,
	"nature-dawn":      drawSunDisc,
	"elegant-noir":     drawThinFrame,
	"elegant-marble":   drawThinFrame,
}

func decorationFor(name string) decorationFunc {
	if fn, ok := decorations[name]; ok {
		return fn
	}
	return drawDefault
}

func accentRGBA(th *theme.Theme, alpha float64) color.RGBA {
	c, ok := theme.ParseHex(th.AccentColor)
	if !ok {
		c = color.RGBA{128, 128, 128, 255}
	}
	c.A = uint8(alpha * 255)
	return c
}

// drawDefault paints two soft accent discs in opposite corners.
func drawDefault(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.12))
	dc.DrawCircle(w*0.92, h*0.1, h*0.22)
	dc.Fill()
	dc.DrawCircle(w*0.08, h*0.92, h*0.3)
	dc.Fill()
}

func drawTitleRule(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.9))
	dc.SetLineWidth(3)
	dc.DrawLine(w*0.35, h*0.26, w*0.65, h*0.26)
	dc.Stroke()
}

func drawCornerStroke(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.5))
	dc.SetLineWidth(10)
	dc.DrawArc(w, 0, h*0.35, math.Pi/2, math.Pi)
	dc.Stroke()
}

func drawFooterBar(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 1))
	dc.DrawRectangle(0, h-24, w, 24)
	dc.Fill()
}

func drawHeaderStripe(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.8))
	dc.MoveTo(0, 0)
	dc.LineTo(w*0.45, 0)
	dc.LineTo(w*0.3, h*0.08)
	dc.LineTo(0, h*0.08)
	dc.ClosePath()
	dc.Fill()
}

func drawCircuitTraces(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.35))
	dc.SetLineWidth(2)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 6; i++ {
		x := w * 0.75
		y := h * (0.15 + 0.12*float64(i))
		dc.MoveTo(x, y)
		for j := 0; j < 3; j++ {
			x += w * 0.05 * (1 + rng.Float64())
			dc.LineTo(x, y)
			y += h * 0.03 * (rng.Float64() - 0.5) * 2
			dc.LineTo(x, y)
		}
		dc.Stroke()
		dc.DrawCircle(x, y, 4)
		dc.Fill()
	}
}

func drawScanlines(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.06))
	for y := 0.0; y < h; y += 4 {
		dc.DrawRectangle(0, y, w, 1.5)
		dc.Fill()
	}
}

func drawBlueprintGrid(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.12))
	dc.SetLineWidth(1)
	for x := 0.0; x < w; x += 64 {
		dc.DrawLine(x, 0, x, h)
		dc.Stroke()
	}
	for y := 0.0; y < h; y += 64 {
		dc.DrawLine(0, y, w, y)
		dc.Stroke()
	}
}

func drawConfetti(dc *gg.Context, th *theme.Theme, w, h float64) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		alpha := 0.2 + rng.Float64()*0.3
		dc.SetColor(accentRGBA(th, alpha))
		dc.DrawCircle(rng.Float64()*w, rng.Float64()*h, 3+rng.Float64()*6)
		dc.Fill()
	}
}

func drawStarField(dc *gg.Context, th *theme.Theme, w, h float64) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 80; i++ {
		alpha := 0.3 + rng.Float64()*0.5
		dc.SetRGBA(1, 1, 1, alpha)
		dc.DrawCircle(rng.Float64()*w, rng.Float64()*h*0.6, 0.8+rng.Float64()*1.4)
		dc.Fill()
	}
}

func drawHorizonGrid(dc *gg.Context, th *theme.Theme, w, h float64) {
	horizon := h * 0.72
	dc.SetColor(accentRGBA(th, 0.5))
	dc.SetLineWidth(2)

	for i := 0; i < 7; i++ {
		y := horizon + (h-horizon)*math.Pow(float64(i)/6, 1.6)
		dc.DrawLine(0, y, w, y)
		dc.Stroke()
	}
	for i := -6; i <= 6; i++ {
		dc.DrawLine(w/2+float64(i)*w*0.04, horizon, w/2+float64(i)*w*0.22, h)
		dc.Stroke()
	}
}

func drawSunDisc(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.6))
	dc.DrawCircle(w*0.8, h*0.68, h*0.16)
	dc.Fill()
	dc.SetColor(accentRGBA(th, 0.9))
	dc.SetLineWidth(3)
	dc.DrawLine(0, h*0.7, w, h*0.7)
	dc.Stroke()
}

func drawThinFrame(dc *gg.Context, th *theme.Theme, w, h float64) {
	dc.SetColor(accentRGBA(th, 0.8))
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(28, 28, w-56, h-56)
	dc.Stroke()
}
