package flier

import (
	"github.com/matzehuels/flierkit/pkg/core/preset"
)

// Request describes a flyer to lay out or generate.
//
// Field names follow the generation service's vocabulary so a request file
// can be forwarded to it unchanged.
type Request struct {
	ID       string      `json:"id,omitempty" toml:"id"`
	Type     preset.Type `json:"flierType,omitempty" toml:"flierType"`
	Language string      `json:"language,omitempty" toml:"language"`

	Title           string `json:"title" toml:"title"`
	Subtitle        string `json:"subtitle,omitempty" toml:"subtitle"`
	PromotionalText string `json:"promotionalText,omitempty" toml:"promotionalText"`
	CTA             string `json:"cta,omitempty" toml:"cta"`
	Details         string `json:"details,omitempty" toml:"details"`

	TargetAudience  string `json:"targetAudience,omitempty" toml:"targetAudience"`
	BusinessType    string `json:"businessType,omitempty" toml:"businessType"`
	StylePreference string `json:"stylePreference,omitempty" toml:"stylePreference"`
	ColorScheme     string `json:"colorScheme,omitempty" toml:"colorScheme"`
	MoodLevel       int    `json:"moodLevel,omitempty" toml:"moodLevel"`
	FlierSize       string `json:"flierSize,omitempty" toml:"flierSize"`
	Orientation     string `json:"orientation,omitempty" toml:"orientation"`

	Logo            string `json:"logo,omitempty" toml:"logo"`
	UploadedImage   string `json:"uploadedImage,omitempty" toml:"uploadedImage"`
	ImagePreference string `json:"imagePreference,omitempty" toml:"imagePreference"`

	Background      Background   `json:"background,omitzero" toml:"background"`
	Elements        []Element    `json:"elements,omitempty" toml:"elements"`
	ContainerWidth  float64      `json:"containerWidth,omitempty" toml:"containerWidth"`
	ContainerHeight float64      `json:"containerHeight,omitempty" toml:"containerHeight"`
	AISuggestions   *Suggestions `json:"aiSuggestions,omitempty" toml:"aiSuggestions"`
}

// Clone returns a copy of r that shares no element storage with it.
// Suggestions are shared; nothing in this module mutates them.
func (r *Request) Clone() *Request {
	out := *r
	if r.Elements != nil {
		out.Elements = make([]Element, len(r.Elements))
		for i, e := range r.Elements {
			if e.Position != nil {
				p := *e.Position
				e.Position = &p
			}
			out.Elements[i] = e
		}
	}
	return &out
}

// Data is the subset of a request the rules engine reads.
type Data struct {
	ColorScheme     string       `json:"colorScheme,omitempty"`
	BusinessType    string       `json:"businessType,omitempty"`
	TargetAudience  string       `json:"targetAudience,omitempty"`
	StylePreference string       `json:"stylePreference,omitempty"`
	AISuggestions   *Suggestions `json:"aiSuggestions,omitempty"`
}

// RulesData returns the rules engine input for r.
func (r *Request) RulesData() Data {
	return Data{
		ColorScheme:     r.ColorScheme,
		BusinessType:    r.BusinessType,
		TargetAudience:  r.TargetAudience,
		StylePreference: r.StylePreference,
		AISuggestions:   r.AISuggestions,
	}
}

// Suggestions are styling hints produced by an AI assistant. Every field is
// optional; the rules engine applies what is present after its own rules.
type Suggestions struct {
	Layout            string                    `json:"layout,omitempty" toml:"layout"`
	ElementPositions  map[string]SuggestedPoint `json:"elementPositions,omitempty" toml:"elementPositions"`
	ColorApplications map[string]string         `json:"colorApplications,omitempty" toml:"colorApplications"`
	FontSelections    map[string]string         `json:"fontSelections,omitempty" toml:"fontSelections"`
	DesignRationale   string                    `json:"designRationale,omitempty" toml:"designRationale"`
	Styles            []StyleOption             `json:"styles,omitempty" toml:"styles"`
}

// SuggestedPoint is a position hint in percent. Coordinates are untyped
// because suggestions may carry non-numeric values; see [Number].
type SuggestedPoint struct {
	X any `json:"x,omitempty" toml:"x"`
	Y any `json:"y,omitempty" toml:"y"`
}

// Number converts a decoded JSON or TOML scalar to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// StyleOption is one complete visual style a user can pick from.
type StyleOption struct {
	Background      Background `json:"background"`
	TextColor       string     `json:"textColor"`
	AccentColor     string     `json:"accentColor"`
	HighlightColor  string     `json:"highlightColor,omitempty"`
	Pattern         string     `json:"pattern"`
	BackgroundImage string     `json:"backgroundImage"`
	DesignRationale string     `json:"designRationale,omitempty"`
}
