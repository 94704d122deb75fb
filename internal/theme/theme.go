// Package theme is the registry of visual styles a slide can name: palettes,
// fonts, text positions, and gradient recipes. Themes are static and
// immutable at runtime; the drawing routines paired with them live in the
// render package, keyed by theme name.
package theme

import (
	"image/color"
	"strings"
)

// DefaultName is the theme every unknown name ultimately falls back to.
const DefaultName = "minimal-clean"

// Font describes a text style: point size plus a descriptive family string.
type Font struct {
	Size   float64
	Family string
}

// Point is a position on the slide surface in pixels (1280x720 reference).
type Point struct {
	X, Y float64
}

// Theme is one named visual style. BackgroundColor is either a literal hex
// color or a "gradient:<key>" sentinel resolved against the gradient table.
// Decorations are descriptive labels only; the render package decides what
// actually gets drawn.
type Theme struct {
	Name            string
	Category        string
	BackgroundColor string
	TextColor       string
	AccentColor     string
	TitleFont       Font
	ContentFont     Font
	TitlePosition   Point
	ContentPosition Point
	Decorations     []string
}

// Registry maps theme names to themes, case-insensitively, and knows the
// base theme of each category for fallback resolution.
type Registry struct {
	themes       map[string]*Theme
	order        []string
	categoryBase map[string]string
}

// NewRegistry returns a registry pre-populated with the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{
		themes:       make(map[string]*Theme),
		categoryBase: make(map[string]string),
	}
	for _, t := range builtins {
		r.Register(t)
	}
	return r
}

// Register adds a theme. The first theme registered in a category becomes
// that category's fallback.
func (r *Registry) Register(t *Theme) {
	key := strings.ToLower(t.Name)
	if _, exists := r.themes[key]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.themes[key] = t
	if _, ok := r.categoryBase[t.Category]; !ok {
		r.categoryBase[t.Category] = t.Name
	}
}

// Get looks a theme up by name, case-insensitively.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Resolve maps any name to a theme, never failing: exact match first, then
// the base theme of the name's leading category segment, then the default.
func (r *Registry) Resolve(name string) *Theme {
	if t, ok := r.Get(name); ok {
		return t
	}

	// "corporate-something-new" falls back to the corporate base theme.
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(trimmed, '-'); i > 0 {
		if base, ok := r.categoryBase[trimmed[:i]]; ok {
			if t, ok := r.Get(base); ok {
				return t
			}
		}
	}

	return r.Default()
}

// Default returns the fixed fallback theme.
func (r *Registry) Default() *Theme {
	t, _ := r.Get(DefaultName)
	return t
}

// Names returns all theme names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Categories returns the known category names.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range r.order {
		t, _ := r.Get(name)
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// ParseHex parses #rgb and #rrggbb colors. The second return is false for
// anything else.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]

	nibble := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	switch len(hex) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return color.RGBA{}, false
			}
			c[i] = n*16 + n
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, true
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := nibble(hex[2*i])
			lo, ok2 := nibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			c[i] = hi*16 + lo
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, true
	}
	return color.RGBA{}, false
}
