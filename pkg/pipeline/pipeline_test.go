package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/flierkit/pkg/cache"
	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/integrations/backend"
	"github.com/matzehuels/flierkit/pkg/render"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewMemoryCache(64)
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, nil)
}

func sampleRequest() *flier.Request {
	return &flier.Request{
		ID:              "req-1",
		Title:           "Grand Opening",
		PromotionalText: "Free coffee all weekend for every visitor who brings a friend along",
		CTA:             "Visit us",
		ColorScheme:     "warm",
		StylePreference: "modern",
	}
}

// fakeGenerator records requests and returns a fixed response or error.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []*flier.Request
	resp  *backend.Response
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, r *flier.Request) (*backend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r)
	return f.resp, f.err
}

func twoOptions() *backend.Response {
	return &backend.Response{
		Success: true,
		BackgroundOptions: []backend.BackgroundOption{
			{Name: "Plain", BackgroundCSS: "#ffffff", TextColor: "#000", Source: "ai"},
			{Name: "Busy", BackgroundCSS: "url(a.png), radial-gradient(#ff0000, #00ff00, #0000ff)",
				TextColor: "#fff", Source: "imagen", FontFamily: "Montserrat"},
		},
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
	}{
		{"defaults", Options{}, ""},
		{"formats", Options{Formats: []string{"json", "svg", "dot"}}, ""},
		{"bad format", Options{Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
		{"negative width", Options{ContainerWidth: -1}, errors.ErrCodeInvalidLayoutParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(tt.opts.Formats) == 0 || tt.opts.Concurrency != DefaultConcurrency || tt.opts.Logger == nil {
					t.Errorf("defaults not applied: %+v", tt.opts)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestComposeCaches(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	req := sampleRequest()

	first, hit, err := r.ComposeWithCacheInfo(ctx, req, Options{})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if hit {
		t.Error("first compose should miss the cache")
	}
	if first.Layout.RequestID != "req-1" || len(first.Layout.Records) != 3 {
		t.Errorf("unexpected layout: %+v", first.Layout)
	}
	if len(first.Rules.Decisions) == 0 {
		t.Error("decision log should not be empty")
	}

	second, hit, err := r.ComposeWithCacheInfo(ctx, req, Options{})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !hit {
		t.Error("second compose should hit the cache")
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("cached composition differs:\n%s\n%s", a, b)
	}

	_, hit, _ = r.ComposeWithCacheInfo(ctx, req, Options{Refresh: true})
	if hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestComposeDoesNotMutateRequest(t *testing.T) {
	r := newTestRunner(t)
	req := &flier.Request{
		Elements: []flier.Element{
			{Role: flier.RoleTitle, Text: "Hello"},
		},
	}

	if _, err := r.Compose(context.Background(), req, Options{}); err != nil {
		t.Fatal(err)
	}
	if req.Elements[0].ID != "" || req.Elements[0].Priority != 0 || req.ContainerWidth != 0 {
		t.Errorf("request was modified: %+v", req)
	}
}

func TestComposeBackgroundAndWidth(t *testing.T) {
	r := newTestRunner(t)
	req := sampleRequest()
	req.Background = flier.CSS("url(photo.jpg), radial-gradient(circle, #ff0000, #00ff00)")

	comp, err := r.Compose(context.Background(), req, Options{ContainerWidth: 250})
	if err != nil {
		t.Fatal(err)
	}
	if comp.Layout.Profile.Tier != complexity.High {
		t.Errorf("tier = %s, want high", comp.Layout.Profile.Tier)
	}
	if comp.Layout.ContainerWidth != 250 {
		t.Errorf("container width = %v, want 250", comp.Layout.ContainerWidth)
	}
	for _, rec := range comp.Layout.TextRecords() {
		if rec.WrapWidthPx > 250 {
			t.Errorf("%s wraps at %d, wider than the container", rec.ElementID, rec.WrapWidthPx)
		}
	}
}

func TestComposeInvalid(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.Compose(ctx, nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil request error = %v", err)
	}

	bad := &flier.Request{Elements: []flier.Element{{Role: "banner", Text: "x"}}}
	if _, err := r.Compose(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidElement) {
		t.Errorf("unknown role error = %v", err)
	}
}

func TestComposeBatch(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	var reqs []*flier.Request
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		reqs = append(reqs, &flier.Request{ID: title, Title: title})
	}

	comps, err := r.ComposeBatch(ctx, reqs, Options{Concurrency: 2})
	if err != nil {
		t.Fatalf("ComposeBatch() error: %v", err)
	}
	for i, c := range comps {
		if c.Layout.RequestID != reqs[i].ID {
			t.Errorf("result %d is for %q, want %q", i, c.Layout.RequestID, reqs[i].ID)
		}
	}

	reqs[2] = &flier.Request{Elements: []flier.Element{{Role: flier.RoleTitle, Priority: -1}}}
	_, err = r.ComposeBatch(ctx, reqs, Options{})
	if err == nil || !strings.Contains(err.Error(), "request 2") {
		t.Errorf("error = %v, want failure of request 2", err)
	}

	tooMany := make([]*flier.Request, MaxBatchSize+1)
	if _, err := r.ComposeBatch(ctx, tooMany, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("oversized batch error = %v", err)
	}
}

func TestGenerate(t *testing.T) {
	r := newTestRunner(t)
	gen := &fakeGenerator{resp: twoOptions()}
	r.Backend = gen
	ctx := context.Background()

	req := sampleRequest()
	req.Language = "Hebrew"
	req.BusinessType = "בית קפה" // "cafe" in Hebrew

	out, err := r.Generate(ctx, req, Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(gen.calls) != 1 || gen.calls[0].BusinessType != "Cafe" {
		t.Fatalf("backend saw %+v, want translated business type", gen.calls)
	}
	if req.BusinessType == "Cafe" {
		t.Error("caller's request was translated in place")
	}
	if out.Fallback || len(out.Variants) != 2 {
		t.Fatalf("unexpected generation: %+v", out)
	}

	plain, busy := out.Variants[0], out.Variants[1]
	if plain.Layout.Profile.Tier != complexity.Low {
		t.Errorf("plain tier = %s, want low", plain.Layout.Profile.Tier)
	}
	if busy.Layout.Profile.Tier != complexity.High {
		t.Errorf("busy tier = %s, want high", busy.Layout.Profile.Tier)
	}
	if busy.Typography.TitleWeight != 900 {
		t.Errorf("busy typography = %+v, want Montserrat weights", busy.Typography)
	}

	if _, err := r.Generate(ctx, req, Options{}); err != nil {
		t.Fatal(err)
	}
	if len(gen.calls) != 1 {
		t.Errorf("backend called %d times, want cached response", len(gen.calls))
	}
}

func TestGenerateFallback(t *testing.T) {
	r := newTestRunner(t)
	r.Backend = &fakeGenerator{err: errors.New(errors.ErrCodeUpstreamGeneration, "service down")}
	ctx := context.Background()

	_, err := r.Generate(ctx, sampleRequest(), Options{})
	if !errors.Is(err, errors.ErrCodeUpstreamGeneration) {
		t.Fatalf("error = %v, want upstream failure", err)
	}

	out, err := r.Generate(ctx, sampleRequest(), Options{Fallback: true})
	if err != nil {
		t.Fatalf("Generate(fallback) error: %v", err)
	}
	if !out.Fallback || out.Cause == "" || len(out.Variants) != 3 {
		t.Fatalf("unexpected fallback generation: %+v", out)
	}
	for _, v := range out.Variants {
		if v.Source != SourceFallback || v.Layout == nil {
			t.Errorf("variant %s: source %q layout %v", v.Name, v.Source, v.Layout)
		}
	}
	if !strings.Contains(out.Variants[0].Layout.Background, "linear-gradient(to right") {
		t.Errorf("grid pattern missing from first fallback: %s", out.Variants[0].Layout.Background)
	}
}

func TestGenerateWithoutBackend(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.Generate(context.Background(), sampleRequest(), Options{})
	if !errors.Is(err, errors.ErrCodeUpstreamGeneration) {
		t.Errorf("error = %v, want upstream failure", err)
	}
}

func TestGenerateOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != backend.GeneratePath {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(twoOptions())
	}))
	defer server.Close()

	client, err := backend.NewClient(server.URL, time.Second, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(t)
	r.Backend = client

	out, err := r.Generate(context.Background(), sampleRequest(), Options{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(out.Variants) != 2 || out.Variants[0].Name != "Plain" {
		t.Errorf("unexpected variants: %+v", out.Variants)
	}
}

func TestRenderCaches(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	comp, err := r.Compose(ctx, sampleRequest(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Formats: []string{render.FormatJSON, render.FormatDOT}}
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, comp.Layout, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if hit {
		t.Error("first render should miss the cache")
	}
	if len(artifacts) != 2 || !strings.Contains(string(artifacts[render.FormatDOT]), "digraph") {
		t.Errorf("unexpected artifacts: %v", artifacts)
	}

	_, hit, err = r.RenderWithCacheInfo(ctx, comp.Layout, Options{Formats: []string{render.FormatJSON, render.FormatDOT}})
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second render should hit the cache")
	}

	if _, err := r.Render(ctx, nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil layout error = %v", err)
	}
}
