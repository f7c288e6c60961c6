// Package pipeline provides the flyer layout pipeline shared by the CLI and
// the HTTP API.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Compose: normalise a request, run the rules engine, derive the content
//     elements and place them for the background's complexity
//  2. Generate: ask the generation service for background options and
//     compose one layout per option
//  3. Render: turn a layout into artifacts (JSON, DOT, SVG)
//
// Each stage is cached through the runner's [cache.Cache] and can be run on
// its own.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	comp, err := runner.Compose(ctx, req, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	artifacts, err := runner.Render(ctx, comp.Layout, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flierkit/pkg/cache"
	"github.com/matzehuels/flierkit/pkg/core/rules"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/integrations/backend"
	"github.com/matzehuels/flierkit/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultConcurrency bounds how many requests ComposeBatch works on at once.
	DefaultConcurrency = 8

	// MaxBatchSize is the largest batch ComposeBatch accepts.
	MaxBatchSize = 100
)

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{render.FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// ContainerWidth overrides the request's container width when positive.
	ContainerWidth float64 `json:"container_width,omitempty"`

	// Formats are the render formats.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Fallback composes the rules engine's fallback styles when the
	// generation service fails, instead of returning the failure.
	Fallback bool `json:"fallback,omitempty"`

	// Concurrency bounds ComposeBatch.
	Concurrency int `json:"concurrency,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks options and fills defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ContainerWidth < 0 {
		return errors.New(errors.ErrCodeInvalidLayoutParameter,
			"container width must be positive, got %g", o.ContainerWidth)
	}
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for composing req.
func (o *Options) LayoutKeyOpts(req *flier.Request) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		ContainerWidth: o.containerWidth(req),
		Language:       req.Language,
	}
}

// ArtifactKeyOpts returns cache key options for rendering format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

func (o *Options) containerWidth(req *flier.Request) float64 {
	if o.ContainerWidth > 0 {
		return o.ContainerWidth
	}
	return req.ContainerWidth
}

// =============================================================================
// Results
// =============================================================================

// Composition is the outcome of composing one request.
type Composition struct {
	// Layout is the placement of every element.
	Layout *flier.Layout `json:"layout"`

	// Rules is the rules engine configuration, including its decision log.
	Rules rules.Config `json:"rules"`
}

// Variant is one composed background option.
type Variant struct {
	Name        string             `json:"name"`
	Source      string             `json:"source"`
	Description string             `json:"description,omitempty"`
	Style       flier.StyleOption  `json:"style"`
	Typography  backend.Typography `json:"typography"`
	Layout      *flier.Layout      `json:"layout"`
}

// Generation is the outcome of a generate run.
type Generation struct {
	RequestID string    `json:"request_id,omitempty"`
	Variants  []Variant `json:"variants"`

	// Fallback is set when the variants come from the rules engine because
	// the generation service failed.
	Fallback bool `json:"fallback,omitempty"`

	// Cause is the generation failure that triggered the fallback.
	Cause string `json:"cause,omitempty"`

	LayoutInfo  map[string]any `json:"layout_info,omitempty"`
	ContentInfo map[string]any `json:"content_info,omitempty"`
}
