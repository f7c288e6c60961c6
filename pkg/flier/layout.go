package flier

import (
	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/direction"
	"github.com/matzehuels/flierkit/pkg/core/styles"
	"github.com/matzehuels/flierkit/pkg/core/zone"
)

// LayoutVersion is the version of the layout output contract.
const LayoutVersion = 1

// Kind separates text records from media records.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Record is the placement of one element.
//
// Text records carry zone, anchor, style, direction, font size and wrapped
// text. Image records carry only the element's geometry.
type Record struct {
	ElementID   string                  `json:"element_id" bson:"element_id"`
	Role        Role                    `json:"role" bson:"role"`
	Kind        Kind                    `json:"kind" bson:"kind"`
	Zone        zone.Zone               `json:"zone,omitempty" bson:"zone,omitempty"`
	Anchor      *zone.Anchor            `json:"anchor,omitempty" bson:"anchor,omitempty"`
	Style       *styles.TextWindowStyle `json:"style,omitempty" bson:"style,omitempty"`
	Direction   direction.Direction     `json:"direction,omitempty" bson:"direction,omitempty"`
	FontSizePx  int                     `json:"font_size_px,omitempty" bson:"font_size_px,omitempty"`
	WrapWidthPx int                     `json:"wrap_width_px,omitempty" bson:"wrap_width_px,omitempty"`
	Text        string                  `json:"text,omitempty" bson:"text,omitempty"`
	Geometry    *Position               `json:"geometry,omitempty" bson:"geometry,omitempty"`
}

// Layout is the complete placement of a flyer's elements.
type Layout struct {
	Version         int                `json:"version" bson:"version"`
	RequestID       string             `json:"request_id,omitempty" bson:"request_id,omitempty"`
	Background      string             `json:"background" bson:"background"`
	Profile         complexity.Profile `json:"profile" bson:"profile"`
	ContainerWidth  float64            `json:"container_width" bson:"container_width"`
	ContainerHeight float64            `json:"container_height,omitempty" bson:"container_height,omitempty"`
	Records         []Record           `json:"records" bson:"records"`
}

// TextRecords returns the text records of l in order.
func (l *Layout) TextRecords() []Record {
	var out []Record
	for _, r := range l.Records {
		if r.Kind == KindText {
			out = append(out, r)
		}
	}
	return out
}

// Zones returns how many text records landed in each zone.
func (l *Layout) Zones() map[zone.Zone]int {
	counts := make(map[zone.Zone]int)
	for _, r := range l.Records {
		if r.Kind == KindText {
			counts[r.Zone]++
		}
	}
	return counts
}
