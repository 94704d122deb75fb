package theme

import "strings"

// GradientKind selects the gradient geometry.
type GradientKind string

const (
	Linear GradientKind = "linear"
	Radial GradientKind = "radial"
)

// GradientStop is one color stop, offset in [0,1].
type GradientStop struct {
	Offset float64
	Color  string
}

// Gradient is a background recipe referenced by "gradient:<key>" sentinels.
// Angle applies to linear gradients only, in degrees, 0 pointing right.
type Gradient struct {
	Kind  GradientKind
	Angle float64
	Stops []GradientStop
}

// gradients is the fixed recipe table.
var gradients = map[string]Gradient{
	"sunset": {
		Kind: Linear, Angle: 90,
		Stops: []GradientStop{{0, "#ff7e5f"}, {0.5, "#feb47b"}, {1, "#ffd56b"}},
	},
	"ocean": {
		Kind: Linear, Angle: 135,
		Stops: []GradientStop{{0, "#2e3192"}, {1, "#1bffff"}},
	},
	"aurora": {
		Kind: Linear, Angle: 120,
		Stops: []GradientStop{{0, "#00c9ff"}, {0.5, "#92fe9d"}, {1, "#f9f871"}},
	},
	"midnight": {
		Kind: Linear, Angle: 180,
		Stops: []GradientStop{{0, "#0f2027"}, {0.5, "#203a43"}, {1, "#2c5364"}},
	},
	"ember": {
		Kind: Linear, Angle: 45,
		Stops: []GradientStop{{0, "#870000"}, {1, "#190a05"}},
	},
	"forest": {
		Kind: Linear, Angle: 160,
		Stops: []GradientStop{{0, "#134e5e"}, {1, "#71b280"}},
	},
	"steel": {
		Kind: Linear, Angle: 90,
		Stops: []GradientStop{{0, "#bdc3c7"}, {1, "#2c3e50"}},
	},
	"candy": {
		Kind: Linear, Angle: 60,
		Stops: []GradientStop{{0, "#d53369"}, {1, "#daae51"}},
	},
	"dawn": {
		Kind: Linear, Angle: 90,
		Stops: []GradientStop{{0, "#f3904f"}, {1, "#3b4371"}},
	},
	"nebula": {
		Kind:  Radial,
		Stops: []GradientStop{{0, "#654ea3"}, {0.6, "#35285e"}, {1, "#120c24"}},
	},
	"halo": {
		Kind:  Radial,
		Stops: []GradientStop{{0, "#fdfcfb"}, {1, "#e2d1c3"}},
	},
	"deep-space": {
		Kind:  Radial,
		Stops: []GradientStop{{0, "#16222a"}, {1, "#000000"}},
	},
}

// LookupGradient resolves a gradient key, tolerating the full
// "gradient:<key>" sentinel as input.
func LookupGradient(key string) (Gradient, bool) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "gradient:")
	g, ok := gradients[key]
	return g, ok
}

// IsGradient reports whether a background color value is a gradient
// sentinel.
func IsGradient(background string) bool {
	return strings.HasPrefix(background, "gradient:")
}
