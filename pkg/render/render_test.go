package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"svg", false},
		{"dot", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestRenderAll(t *testing.T) {
	l := &flier.Layout{
		Version:        flier.LayoutVersion,
		Profile:        complexity.Profile{Tier: complexity.Medium},
		ContainerWidth: 800,
		Records: []flier.Record{
			{ElementID: "title-1", Role: flier.RoleTitle, Kind: flier.KindText, Zone: zone.CenterRight},
		},
	}

	out, err := RenderAll(l, []string{FormatJSON, FormatDOT, FormatSVG})
	if err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	if !bytes.HasPrefix(out[FormatJSON], []byte("{")) {
		t.Errorf("json artifact = %.40s", out[FormatJSON])
	}
	if !bytes.Contains(out[FormatDOT], []byte("digraph flyer")) {
		t.Errorf("dot artifact = %.40s", out[FormatDOT])
	}
	if !bytes.Contains(out[FormatSVG], []byte("<svg")) {
		t.Errorf("svg artifact = %.40s", out[FormatSVG])
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, FormatJSON); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Render(nil) error = %v", err)
	}
	if _, err := RenderAll(&flier.Layout{}, []string{"pdf"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("RenderAll(pdf) error = %v", err)
	}
}
