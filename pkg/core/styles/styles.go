package styles

import (
	"fmt"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
)

// BoxStyle is the container treatment of a text window.
type BoxStyle string

const (
	Glass   BoxStyle = "glass"
	Rounded BoxStyle = "rounded"
	Minimal BoxStyle = "minimal"
)

// Animation is the entrance animation applied to a text window.
type Animation string

const (
	Slide    Animation = "slide"
	FadeIn   Animation = "fadeIn"
	Pulse    Animation = "pulse"
	Floating Animation = "floating"
)

// Animations is the fixed round-robin order of entrance animations.
var Animations = [...]Animation{Slide, FadeIn, Pulse, Floating}

// AnimationAt returns the animation for the i-th element.
func AnimationAt(i int) Animation {
	return Animations[i%len(Animations)]
}

// Shape names the geometry variant chosen for a text length.
type Shape string

const (
	Pill   Shape = "pill"
	Card   Shape = "rounded"
	Subtle Shape = "subtle"
)

// Text length thresholds (in characters) for geometry selection.
const (
	pillMaxLen = 20
	cardMaxLen = 100
)

// Chrome holds the tier-derived fields of a text window.
type Chrome struct {
	BoxStyle          BoxStyle
	BackgroundOpacity float64
}

// Geometry holds the length-derived fields of a text window.
// MaxWidthPx is zero when the width is automatic.
type Geometry struct {
	Shape        Shape
	BorderRadius string
	Padding      string
	MinWidth     string
	MaxWidth     string
	MaxWidthPx   int
}

// TextWindowStyle is the complete treatment of one text window.
type TextWindowStyle struct {
	BoxStyle          BoxStyle  `json:"box_style" bson:"box_style"`
	BackgroundOpacity float64   `json:"background_opacity" bson:"background_opacity"`
	BackgroundColor   string    `json:"background_color" bson:"background_color"`
	Shape             Shape     `json:"shape" bson:"shape"`
	BorderRadius      string    `json:"border_radius" bson:"border_radius"`
	Padding           string    `json:"padding" bson:"padding"`
	MinWidth          string    `json:"min_width" bson:"min_width"`
	MaxWidth          string    `json:"max_width" bson:"max_width"`
	MaxWidthPx        int       `json:"max_width_px,omitempty" bson:"max_width_px,omitempty"`
	Animation         Animation `json:"animation,omitempty" bson:"animation,omitempty"`
}

// ChromeFor returns the chrome for tier. Unknown tiers fall back to the
// medium treatment (rounded, 0.95).
func ChromeFor(tier complexity.Tier) Chrome {
	switch tier {
	case complexity.High:
		return Chrome{BoxStyle: Glass, BackgroundOpacity: 0.98}
	case complexity.Medium:
		return Chrome{BoxStyle: Rounded, BackgroundOpacity: 0.95}
	case complexity.Low:
		return Chrome{BoxStyle: Minimal, BackgroundOpacity: 0.90}
	default:
		return Chrome{BoxStyle: Rounded, BackgroundOpacity: 0.95}
	}
}

// GeometryFor returns the geometry for a text of textLength characters.
func GeometryFor(textLength int) Geometry {
	switch {
	case textLength < pillMaxLen:
		return Geometry{
			Shape:        Pill,
			BorderRadius: "25px",
			Padding:      "12px 20px",
			MinWidth:     "auto",
			MaxWidth:     "auto",
		}
	case textLength < cardMaxLen:
		return Geometry{
			Shape:        Card,
			BorderRadius: "15px",
			Padding:      "16px 24px",
			MinWidth:     "200px",
			MaxWidth:     "300px",
			MaxWidthPx:   300,
		}
	default:
		return Geometry{
			Shape:        Subtle,
			BorderRadius: "10px",
			Padding:      "20px 28px",
			MinWidth:     "200px",
			MaxWidth:     "400px",
			MaxWidthPx:   400,
		}
	}
}

// Merge combines chrome and geometry into a TextWindowStyle.
//
// Field precedence:
//   - BoxStyle, BackgroundOpacity, BackgroundColor: chrome
//   - Shape, BorderRadius, Padding, MinWidth, MaxWidth, MaxWidthPx: geometry
//   - Animation: left empty for the caller
func Merge(c Chrome, g Geometry) TextWindowStyle {
	return TextWindowStyle{
		BoxStyle:          c.BoxStyle,
		BackgroundOpacity: c.BackgroundOpacity,
		BackgroundColor:   c.BackgroundColor(),
		Shape:             g.Shape,
		BorderRadius:      g.BorderRadius,
		Padding:           g.Padding,
		MinWidth:          g.MinWidth,
		MaxWidth:          g.MaxWidth,
		MaxWidthPx:        g.MaxWidthPx,
	}
}

// Style returns the text window style for tier and textLength.
func Style(tier complexity.Tier, textLength int) TextWindowStyle {
	return Merge(ChromeFor(tier), GeometryFor(textLength))
}

// BackgroundColor renders the chrome's backdrop as a white rgba colour.
func (c Chrome) BackgroundColor() string {
	return fmt.Sprintf("rgba(255,255,255,%.2f)", c.BackgroundOpacity)
}

// ParseBoxStyle converts s into a BoxStyle, falling back to Rounded.
func ParseBoxStyle(s string) BoxStyle {
	switch BoxStyle(s) {
	case Glass:
		return Glass
	case Minimal:
		return Minimal
	case Rounded:
		return Rounded
	default:
		return Rounded
	}
}
