package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/flierkit/pkg/cache"
	"github.com/matzehuels/flierkit/pkg/core/compose"
	"github.com/matzehuels/flierkit/pkg/core/rules"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/i18n"
	"github.com/matzehuels/flierkit/pkg/integrations"
	"github.com/matzehuels/flierkit/pkg/integrations/backend"
	"github.com/matzehuels/flierkit/pkg/observability"
	"github.com/matzehuels/flierkit/pkg/render"
)

// Cache entry kinds reported to the cache hooks.
const (
	kindLayout   = "layout"
	kindGenerate = "generate"
	kindArtifact = "artifact"
)

// Source names the origin of a variant.
const (
	SourceFallback = "rules"
)

// Generator requests background options for a flyer.
// [*backend.Client] implements it.
type Generator interface {
	Generate(ctx context.Context, r *flier.Request) (*backend.Response, error)
}

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner keeps no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
	Translator *i18n.Translator

	// Backend is the generation service. Nil disables Generate unless
	// fallback styles are requested.
	Backend Generator
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:      c,
		Keyer:      keyer,
		Logger:     logger,
		Translator: i18n.New(logger),
	}
}

// =============================================================================
// Compose
// =============================================================================

// ComposeWithCacheInfo composes req with caching and returns cache hit info.
// req is not modified.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, in *flier.Request, opts Options) (*Composition, bool, error) {
	if in == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "compose: nil request")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	req := in.Clone()
	flier.Normalize(req)

	reqHash, err := cache.HashJSON(req)
	if err != nil {
		return nil, false, fmt.Errorf("hash request: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(reqHash, opts.LayoutKeyOpts(req))

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnComposeStart(ctx, req.ID, len(req.Elements))

	if !opts.Refresh {
		var cached Composition
		if r.load(ctx, kindLayout, cacheKey, &cached) && cached.Layout != nil {
			hooks.OnComposeComplete(ctx, req.ID, string(cached.Layout.Profile.Tier),
				len(cached.Layout.Records), time.Since(start), nil)
			return &cached, true, nil
		}
	}

	comp, err := composeRequest(req, opts.containerWidth(req), opts.Logger)
	if err != nil {
		hooks.OnComposeComplete(ctx, req.ID, "", 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnComposeComplete(ctx, req.ID, string(comp.Layout.Profile.Tier),
		len(comp.Layout.Records), time.Since(start), nil)

	r.store(ctx, kindLayout, cacheKey, comp, cache.LayoutTTL)

	opts.Logger.Debug("composed layout",
		"request", req.ID,
		"tier", comp.Layout.Profile.Tier,
		"records", len(comp.Layout.Records),
		"duration", time.Since(start))
	return comp, false, nil
}

// Compose is a convenience wrapper that calls ComposeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compose(ctx context.Context, req *flier.Request, opts Options) (*Composition, error) {
	comp, _, err := r.ComposeWithCacheInfo(ctx, req, opts)
	return comp, err
}

// ComposeBatch composes independent requests concurrently, at most
// opts.Concurrency at a time. Results are in input order. The first failure
// cancels the rest.
func (r *Runner) ComposeBatch(ctx context.Context, reqs []*flier.Request, opts Options) ([]*Composition, error) {
	if len(reqs) > MaxBatchSize {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"batch of %d requests exceeds the limit of %d", len(reqs), MaxBatchSize)
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	out := make([]*Composition, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			comp, err := r.Compose(gctx, req, opts)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = comp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// composeRequest runs the rules engine and the composer on a normalised
// request.
func composeRequest(req *flier.Request, containerWidth float64, logger *log.Logger) (*Composition, error) {
	cfg := rules.Generate(req.RulesData())
	for _, d := range cfg.Decisions {
		logger.Debug("rule applied", "category", d.Category, "decision", d.Decision, "reason", d.Reason)
	}

	img := cfg.ImagePosition()
	elements := flier.ContentElements(req, img.X, img.Y)

	bg := req.Background
	if bg.IsZero() {
		bg = cfg.Background()
	}

	layout, err := compose.Layout(bg.String(), elements, compose.Options{ContainerWidth: containerWidth})
	if err != nil {
		return nil, err
	}
	layout.RequestID = req.ID
	layout.ContainerHeight = req.ContainerHeight
	return &Composition{Layout: layout, Rules: cfg}, nil
}

// =============================================================================
// Generate
// =============================================================================

// Generate asks the generation service for background options and composes
// one layout per option. Hebrew business types and audiences are translated
// before the request is sent; the composed text stays as written.
//
// When the service fails and opts.Fallback is set, the rules engine's style
// options are composed instead and the result is marked as a fallback.
func (r *Runner) Generate(ctx context.Context, in *flier.Request, opts Options) (*Generation, error) {
	if in == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "generate: nil request")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	req := in.Clone()
	flier.Normalize(req)

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnGenerateStart(ctx, req.ID)

	gen := &Generation{RequestID: integrations.RequestID(ctx)}
	resp, hit, err := r.GenerateWithCacheInfo(ctx, req, opts)
	if err != nil {
		if !opts.Fallback {
			hooks.OnGenerateComplete(ctx, req.ID, 0, time.Since(start), err)
			return nil, err
		}
		opts.Logger.Warn("generation failed, composing fallback styles", "error", err)
		gen.Fallback = true
		gen.Cause = errors.UserMessage(err)
		gen.Variants = fallbackVariants(req)
	} else {
		opts.Logger.Debug("received background options",
			"options", len(resp.BackgroundOptions), "cached", hit)
		gen.Variants = responseVariants(resp)
		gen.LayoutInfo = resp.LayoutInfo
		gen.ContentInfo = resp.ContentInfo
	}

	reqs := make([]*flier.Request, len(gen.Variants))
	for i, v := range gen.Variants {
		vr := req.Clone()
		vr.Background = rules.StyleBackground(v.Style)
		reqs[i] = vr
	}
	comps, err := r.ComposeBatch(ctx, reqs, opts)
	if err != nil {
		hooks.OnGenerateComplete(ctx, req.ID, 0, time.Since(start), err)
		return nil, err
	}
	for i, c := range comps {
		gen.Variants[i].Layout = c.Layout
	}

	hooks.OnGenerateComplete(ctx, req.ID, len(gen.Variants), time.Since(start), nil)
	opts.Logger.Info("generated variants",
		"variants", len(gen.Variants),
		"fallback", gen.Fallback,
		"duration", time.Since(start))
	return gen, nil
}

// GenerateWithCacheInfo calls the generation service for a normalised
// request with caching and returns cache hit info. Only successful responses
// are cached.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, req *flier.Request, opts Options) (*backend.Response, bool, error) {
	if r.Backend == nil {
		return nil, false, errors.New(errors.ErrCodeUpstreamGeneration, "no generation service configured")
	}
	r.applyLogger(&opts)

	sent := req
	if r.Translator != nil {
		sent = r.Translator.TranslateRequest(req, req.Language)
	}
	reqHash, err := cache.HashJSON(backend.RequestFrom(sent))
	if err != nil {
		return nil, false, fmt.Errorf("hash request: %w", err)
	}
	cacheKey := r.Keyer.GenerateKey(reqHash)

	if !opts.Refresh {
		var cached backend.Response
		if r.load(ctx, kindGenerate, cacheKey, &cached) && len(cached.BackgroundOptions) > 0 {
			return &cached, true, nil
		}
	}

	resp, err := r.Backend.Generate(ctx, sent)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, kindGenerate, cacheKey, resp, cache.GenerateTTL)
	return resp, false, nil
}

func responseVariants(resp *backend.Response) []Variant {
	out := make([]Variant, len(resp.BackgroundOptions))
	for i, o := range resp.BackgroundOptions {
		name := o.Name
		if name == "" {
			name = fmt.Sprintf("option-%d", i+1)
		}
		out[i] = Variant{
			Name:        name,
			Source:      o.Source,
			Description: o.Description,
			Style: flier.StyleOption{
				Background:      o.Background(),
				TextColor:       o.TextColor,
				AccentColor:     o.AccentColor,
				Pattern:         rules.None,
				BackgroundImage: rules.None,
				DesignRationale: o.Description,
			},
			Typography: o.Typography(),
		}
	}
	return out
}

func fallbackVariants(req *flier.Request) []Variant {
	styles := rules.StyleOptions(req.RulesData())
	out := make([]Variant, len(styles))
	for i, s := range styles {
		out[i] = Variant{
			Name:        fmt.Sprintf("fallback-%d", i+1),
			Source:      SourceFallback,
			Description: s.DesignRationale,
			Style:       s,
			Typography:  backend.TypographyFor(""),
		}
	}
	return out
}

// =============================================================================
// Render
// =============================================================================

// RenderWithCacheInfo renders l in opts.Formats with caching and returns
// cache hit info. The hit flag is set only when every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *flier.Layout, opts Options) (map[string][]byte, bool, error) {
	if l == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "render: nil layout")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	layoutHash, err := cache.HashJSON(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, kindArtifact)
				break
			}
			observability.Cache().OnCacheHit(ctx, kindArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}

	rendered, err := render.RenderAll(l, opts.Formats)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, kindArtifact, len(data))
		}
	}

	opts.Logger.Debug("rendered outputs", "formats", opts.Formats, "duration", time.Since(start))
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l *flier.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// =============================================================================
// Helpers
// =============================================================================

// load decodes a cached JSON entry into v. Backend errors and undecodable
// entries count as misses.
func (r *Runner) load(ctx context.Context, kind, key string, v any) bool {
	hit, err := cache.GetJSON(ctx, r.Cache, key, v)
	if err != nil {
		r.Logger.Debug("cache read failed", "kind", kind, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return true
}

// store writes v as JSON. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, kind, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err == nil {
		err = r.Cache.Set(ctx, key, data, ttl)
	}
	if err != nil {
		r.Logger.Debug("cache write failed", "kind", kind, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
