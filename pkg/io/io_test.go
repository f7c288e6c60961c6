package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

const tomlRequest = `
title = "Grand Opening"
promotionalText = "Free coffee all weekend"
businessType = "cafe"
colorScheme = "warm"
background = "linear-gradient(135deg, #fff8f0 0%, #ffebe0 100%)"

[[elements]]
role = "title"
text = "Grand Opening"
priority = 1

[[elements]]
role = "logo"
[elements.position]
x = 20
y = 20
width = 100
height = 60
`

func TestReadRequestTOML(t *testing.T) {
	req, err := ReadRequest(strings.NewReader(tomlRequest), FormatTOML)
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	if req.Title != "Grand Opening" || req.BusinessType != "cafe" {
		t.Errorf("unexpected request: %+v", req)
	}
	if !strings.HasPrefix(req.Background.CSS, "linear-gradient") {
		t.Errorf("background = %+v, want raw CSS", req.Background)
	}
	if len(req.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(req.Elements))
	}
	if p := req.Elements[1].Position; p == nil || p.Width != 100 {
		t.Errorf("logo position = %+v", p)
	}
}

func TestReadRequestTOMLStructuredBackground(t *testing.T) {
	in := `
title = "Sale"
[background]
type = "gradient"
color = "#ffffff"
gradient = "linear-gradient(#000000, #ffffff)"
`
	req, err := ReadRequest(strings.NewReader(in), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if req.Background.Type != flier.BackgroundGradient || req.Background.Color != "#ffffff" {
		t.Errorf("background = %+v", req.Background)
	}
}

func TestReadRequestJSON(t *testing.T) {
	in := `{
		"title": "סדנת קפה",
		"businessType": "בית קפה",
		"language": "he",
		"background": {"type": "solid", "color": "#fafafa"},
		"aiSuggestions": {"elementPositions": {"image": {"x": 30, "y": "top"}}}
	}`
	req, err := ReadRequest(strings.NewReader(in), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if req.Background.Color != "#fafafa" {
		t.Errorf("background = %+v", req.Background)
	}
	pt := req.AISuggestions.ElementPositions["image"]
	if x, ok := flier.Number(pt.X); !ok || x != 30 {
		t.Errorf("x = %v", pt.X)
	}
	if _, ok := flier.Number(pt.Y); ok {
		t.Errorf("y = %v should not be numeric", pt.Y)
	}
}

func TestReadRequestInvalid(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format Format
	}{
		{"bad json", `{"title": `, FormatJSON},
		{"bad toml", `title = `, FormatTOML},
		{"control chars", "{\"title\": \"a\\u0007b\"}", FormatJSON},
		{"bad element id", `{"elements": [{"id": "a b", "role": "title"}]}`, FormatJSON},
		{"unknown format", `{}`, Format("yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRequest(strings.NewReader(tt.in), tt.format); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, _ := FormatFromPath("a/b.TOML"); f != FormatTOML {
		t.Errorf("got %s", f)
	}
	if f, _ := FormatFromPath("req.json"); f != FormatJSON {
		t.Errorf("got %s", f)
	}
	if _, err := FormatFromPath("req.yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestImportRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.toml")
	if err := os.WriteFile(path, []byte(tomlRequest), 0o644); err != nil {
		t.Fatal(err)
	}
	req, err := ImportRequest(path)
	if err != nil {
		t.Fatal(err)
	}
	if req.ColorScheme != "warm" {
		t.Errorf("colorScheme = %q", req.ColorScheme)
	}

	if _, err := ImportRequest(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := &flier.Layout{
		Version:        flier.LayoutVersion,
		Background:     "#ffffff",
		Profile:        complexity.Analyze("#ffffff"),
		ContainerWidth: 800,
		Records: []flier.Record{
			{ElementID: "title", Role: flier.RoleTitle, Kind: flier.KindText, Text: "Hi"},
		},
	}
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadLayout(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Records) != 1 || got.Records[0].Text != "Hi" || got.Profile.Tier != complexity.Low {
		t.Errorf("round trip = %+v", got)
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := ExportLayout(l, path); err != nil {
		t.Fatal(err)
	}
}

func TestReadLayoutVersion(t *testing.T) {
	if _, err := ReadLayout(strings.NewReader(`{"version": 99}`)); err == nil {
		t.Error("expected version error")
	}
}
