package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

// Format is a request file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format for a file from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported request file %q (want .json or .toml)", path)
	}
}

// ReadRequest decodes a flyer request from r.
//
// The request is not normalized; callers run [flier.Normalize] when they
// need defaults filled in. ReadRequest does not close r.
func ReadRequest(r io.Reader, format Format) (*flier.Request, error) {
	var req flier.Request
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON request")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&req); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML request")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown request format %q", format)
	}
	if err := ValidateRequest(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ImportRequest reads the request file at path.
func ImportRequest(path string) (*flier.Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	req, err := ReadRequest(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// ReadLayout decodes a JSON layout from r.
func ReadLayout(r io.Reader) (*flier.Layout, error) {
	var l flier.Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if l.Version != flier.LayoutVersion {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported layout version %d", l.Version)
	}
	return &l, nil
}

// ValidateRequest checks a request's text fields and element IDs.
func ValidateRequest(r *flier.Request) error {
	texts := []struct {
		field string
		value string
	}{
		{"title", r.Title},
		{"subtitle", r.Subtitle},
		{"promotionalText", r.PromotionalText},
		{"cta", r.CTA},
		{"details", r.Details},
	}
	for _, t := range texts {
		if err := errors.ValidateText(t.value); err != nil {
			return fmt.Errorf("%s: %w", t.field, err)
		}
	}
	for i, e := range r.Elements {
		if e.ID != "" {
			if err := errors.ValidateElementID(e.ID); err != nil {
				return fmt.Errorf("elements[%d]: %w", i, err)
			}
		}
		if err := errors.ValidateText(e.Text); err != nil {
			return fmt.Errorf("elements[%d]: %w", i, err)
		}
	}
	return nil
}
