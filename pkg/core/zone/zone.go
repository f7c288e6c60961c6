// Package zone names the screen regions a text block may be anchored to and
// selects which of them are safe for a given background complexity.
//
// Busier backgrounds restrict placement to edge zones where legibility
// suffers least:
//
//	low:    center, center-right, top-right, bottom-center
//	medium: center-right, top-right, bottom-center
//	high:   center-right, top-right
package zone

import (
	"strings"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
)

// Zone is a named region with a fixed anchor rule.
type Zone string

const (
	Center       Zone = "center"
	CenterRight  Zone = "center-right"
	TopRight     Zone = "top-right"
	BottomCenter Zone = "bottom-center"
	TopLeft      Zone = "top-left"
	BottomRight  Zone = "bottom-right"
)

// All lists every zone in a stable order.
var All = []Zone{Center, CenterRight, TopRight, BottomCenter, TopLeft, BottomRight}

// Anchor positions a block relative to the flyer frame. Offsets are CSS
// percentages; empty offsets are unset. Transform recentres the block on
// its anchor point where needed.
type Anchor struct {
	Top       string `json:"top,omitempty" bson:"top,omitempty"`
	Right     string `json:"right,omitempty" bson:"right,omitempty"`
	Bottom    string `json:"bottom,omitempty" bson:"bottom,omitempty"`
	Left      string `json:"left,omitempty" bson:"left,omitempty"`
	Transform string `json:"transform,omitempty" bson:"transform,omitempty"`
}

var safeZones = map[complexity.Tier][]Zone{
	complexity.Low:    {Center, CenterRight, TopRight, BottomCenter},
	complexity.Medium: {CenterRight, TopRight, BottomCenter},
	complexity.High:   {CenterRight, TopRight},
}

var anchors = map[Zone]Anchor{
	Center:       {Top: "50%", Left: "50%", Transform: "translate(-50%, -50%)"},
	CenterRight:  {Top: "50%", Right: "5%", Transform: "translateY(-50%)"},
	TopRight:     {Top: "10%", Right: "5%"},
	BottomCenter: {Bottom: "15%", Left: "50%", Transform: "translateX(-50%)"},
	TopLeft:      {Top: "10%", Left: "5%"},
	BottomRight:  {Bottom: "15%", Right: "5%"},
}

// SafeZones returns the zones usable for tier, in priority order.
// Unknown tiers get the medium list. The returned slice is a copy.
func SafeZones(tier complexity.Tier) []Zone {
	zones, ok := safeZones[tier]
	if !ok {
		zones = safeZones[complexity.Medium]
	}
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// AnchorFor returns the anchor rule for z. Unknown zones get an empty anchor,
// which leaves the block at the renderer's default position.
func AnchorFor(z Zone) Anchor {
	return anchors[z]
}

// String renders the anchor as CSS declarations, e.g. "top: 5%; right: 5%".
func (a Anchor) String() string {
	var parts []string
	for _, d := range [...]struct{ prop, v string }{
		{"top", a.Top}, {"right", a.Right}, {"bottom", a.Bottom}, {"left", a.Left}, {"transform", a.Transform},
	} {
		if d.v != "" {
			parts = append(parts, d.prop+": "+d.v)
		}
	}
	return strings.Join(parts, "; ")
}

// Valid reports whether z is a known zone.
func (z Zone) Valid() bool {
	_, ok := anchors[z]
	return ok
}

// At returns the zone for the i-th element under round-robin assignment.
// zones must be non-empty.
func At(zones []Zone, i int) Zone {
	return zones[i%len(zones)]
}
