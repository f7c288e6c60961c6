// Package compose places flyer content elements.
//
// [Compose] walks the elements in caller order. Element i is assigned the
// zone SafeZones(tier)[i mod n] and the animation Animations[i mod 4]; text
// elements additionally get a direction, a text window style, a font size
// and wrapped text. Image and logo elements keep their caller-supplied
// geometry and are not styled or zoned, though they still consume a
// round-robin slot.
//
// Several text elements may share a zone when there are more elements than
// safe zones. No collision resolution is attempted.
//
// Compose is pure: the same profile, elements and options always give the
// same records.
package compose

import (
	"fmt"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/direction"
	"github.com/matzehuels/flierkit/pkg/core/sizing"
	"github.com/matzehuels/flierkit/pkg/core/styles"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

// Options controls composition.
type Options struct {
	// ContainerWidth is the flyer frame width in pixels. Required.
	ContainerWidth float64
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.ContainerWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidLayoutParameter,
			"container width must be positive, got %g", o.ContainerWidth)
	}
	return nil
}

// Compose returns one record per element, in element order. An empty
// element list yields an empty, non-nil result.
func Compose(profile complexity.Profile, elements []flier.Element, opts Options) ([]flier.Record, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, e := range elements {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	zones := zone.SafeZones(profile.Tier)
	records := make([]flier.Record, 0, len(elements))
	for i, e := range elements {
		if e.Role.IsMedia() {
			records = append(records, mediaRecord(e))
			continue
		}
		r, err := textRecord(e, i, zones, profile.Tier, opts.ContainerWidth)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", e, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func mediaRecord(e flier.Element) flier.Record {
	geom := *e.Position
	return flier.Record{
		ElementID: e.ID,
		Role:      e.Role,
		Kind:      flier.KindImage,
		Geometry:  &geom,
	}
}

func textRecord(e flier.Element, i int, zones []zone.Zone, tier complexity.Tier, containerWidth float64) (flier.Record, error) {
	z := zone.At(zones, i)
	anchor := zone.AnchorFor(z)

	style := styles.Style(tier, e.TextLength())
	style.Animation = styles.AnimationAt(i)

	fontSize, err := sizing.FontSize(containerWidth, e.Priority)
	if err != nil {
		return flier.Record{}, err
	}

	wrapWidth := WrapWidth(style, containerWidth)
	text, err := sizing.Wrap(e.Text, wrapWidth, float64(fontSize))
	if err != nil {
		return flier.Record{}, err
	}

	return flier.Record{
		ElementID:   e.ID,
		Role:        e.Role,
		Kind:        flier.KindText,
		Zone:        z,
		Anchor:      &anchor,
		Style:       &style,
		Direction:   direction.Detect(e.Text),
		FontSizePx:  fontSize,
		WrapWidthPx: int(wrapWidth),
		Text:        text,
	}, nil
}

// WrapWidth is the width text wraps at: the style's max width, or the
// container width when the style's width is automatic. It never exceeds the
// container width.
func WrapWidth(style styles.TextWindowStyle, containerWidth float64) float64 {
	if style.MaxWidthPx <= 0 {
		return containerWidth
	}
	return min(float64(style.MaxWidthPx), containerWidth)
}

// Layout analyses background and composes elements into a complete layout.
func Layout(background string, elements []flier.Element, opts Options) (*flier.Layout, error) {
	profile := complexity.Analyze(background)
	records, err := Compose(profile, elements, opts)
	if err != nil {
		return nil, err
	}
	return &flier.Layout{
		Version:        flier.LayoutVersion,
		Background:     background,
		Profile:        profile,
		ContainerWidth: opts.ContainerWidth,
		Records:        records,
	}, nil
}
