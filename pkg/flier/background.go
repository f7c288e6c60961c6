package flier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Background kinds for structured descriptors.
const (
	BackgroundSolid    = "solid"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
)

// Background describes a flyer background either as a raw CSS value or as a
// structured record. When CSS is set the structured fields are ignored.
//
// In JSON and TOML a background may be given as a plain string (raw CSS) or
// as an object with the structured fields.
type Background struct {
	CSS         string `json:"css,omitempty" toml:"css" bson:"css,omitempty"`
	Type        string `json:"type,omitempty" toml:"type" bson:"type,omitempty"`
	Color       string `json:"color,omitempty" toml:"color" bson:"color,omitempty"`
	Gradient    string `json:"gradient,omitempty" toml:"gradient" bson:"gradient,omitempty"`
	Pattern     string `json:"pattern,omitempty" toml:"pattern" bson:"pattern,omitempty"`
	PatternSize string `json:"pattern_size,omitempty" toml:"pattern_size" bson:"pattern_size,omitempty"`
	Image       string `json:"image,omitempty" toml:"image" bson:"image,omitempty"`
}

// CSS returns a raw CSS background.
func CSS(s string) Background {
	return Background{CSS: s}
}

// IsZero reports whether b describes nothing.
func (b Background) IsZero() bool {
	return b == Background{}
}

// String flattens b into a CSS background value. Layers are emitted top to
// bottom: pattern, gradient, image, then the base colour.
func (b Background) String() string {
	if b.CSS != "" {
		return b.CSS
	}
	var layers []string
	if b.Pattern != "" {
		layers = append(layers, b.Pattern)
	}
	if b.Gradient != "" {
		layers = append(layers, b.Gradient)
	}
	if b.Image != "" {
		img := b.Image
		if !strings.HasPrefix(img, "url(") {
			img = fmt.Sprintf("url(%q)", img)
		}
		layers = append(layers, img)
	}
	if b.Color != "" {
		layers = append(layers, b.Color)
	}
	return strings.Join(layers, ", ")
}

// MarshalJSON writes a raw CSS background as a string and a structured one
// as an object.
func (b Background) MarshalJSON() ([]byte, error) {
	if b.CSS != "" {
		return json.Marshal(b.CSS)
	}
	type plain Background
	return json.Marshal(plain(b))
}

// UnmarshalJSON accepts either a string or an object.
func (b *Background) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Background{CSS: s}
		return nil
	}
	type plain Background
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	*b = Background(p)
	return nil
}

// UnmarshalTOML accepts either a string or a table.
func (b *Background) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*b = Background{CSS: v}
		return nil
	case map[string]any:
		str := func(key string) string {
			s, _ := v[key].(string)
			return s
		}
		*b = Background{
			CSS:         str("css"),
			Type:        str("type"),
			Color:       str("color"),
			Gradient:    str("gradient"),
			Pattern:     str("pattern"),
			PatternSize: str("pattern_size"),
			Image:       str("image"),
		}
		return nil
	default:
		return fmt.Errorf("background: unsupported TOML value %T", v)
	}
}
