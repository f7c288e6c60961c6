package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/render/sink"
	"github.com/matzehuels/flierkit/pkg/render/zonemap"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists the supported formats in display order.
var Formats = []string{FormatJSON, FormatSVG, FormatDOT}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Render produces the artifact for format.
func Render(l *flier.Layout, format string) ([]byte, error) {
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "render: nil layout")
	}
	switch format {
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatDOT:
		return []byte(zonemap.ToDOT(l, zonemap.Options{})), nil
	case FormatSVG:
		svg, err := zonemap.RenderSVG(zonemap.ToDOT(l, zonemap.Options{}))
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return svg, nil
	default:
		return nil, ValidateFormat(format)
	}
}

// RenderAll produces one artifact per format.
func RenderAll(l *flier.Layout, formats []string) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := Render(l, f)
		if err != nil {
			return nil, err
		}
		out[f] = data
	}
	return out, nil
}
