// Package observability lets callers watch the layout pipeline without
// flierkit depending on a metrics or tracing stack.
//
// Four hook sets cover the places where time goes:
//
//   - [PipelineHooks]: compose, generate and render runs
//   - [CacheHooks]: hits, misses and writes per entry kind
//   - [HTTPHooks]: calls to the generation service
//   - [ServerHooks]: requests served by the HTTP API
//
// Every set defaults to a no-op. A binary registers its own implementation
// once at startup, before any pipeline work:
//
//	observability.SetPipelineHooks(myMetrics)
//
// [LogHooks] implements all four sets on top of a charmbracelet logger at
// debug level; flierkit -v registers it.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook sets
// =============================================================================

// PipelineHooks receives compose, generate and render events. requestID is
// the flyer request ID, not the HTTP request ID.
type PipelineHooks interface {
	OnComposeStart(ctx context.Context, requestID string, elementCount int)
	OnComposeComplete(ctx context.Context, requestID, tier string, recordCount int, duration time.Duration, err error)

	OnGenerateStart(ctx context.Context, requestID string)
	OnGenerateComplete(ctx context.Context, requestID string, optionCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache events. kind is layout, generate or artifact.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives events for outgoing calls to the generation service.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	// OnError covers transport failures and timeouts, not error statuses.
	OnError(ctx context.Context, method, host, path string, err error)
}

// ServerHooks receives one event per request handled by the HTTP API.
// route is the chi route pattern, such as /api/zones/{tier}.
type ServerHooks interface {
	OnServe(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op defaults
// =============================================================================

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnComposeStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnGenerateStart(context.Context, string) {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

type NoopServerHooks struct{}

func (NoopServerHooks) OnServe(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetServerHooks registers h. A nil h is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Register installs every hook set that h implements.
func Register(h any) {
	if p, ok := h.(PipelineHooks); ok {
		SetPipelineHooks(p)
	}
	if c, ok := h.(CacheHooks); ok {
		SetCacheHooks(c)
	}
	if x, ok := h.(HTTPHooks); ok {
		SetHTTPHooks(x)
	}
	if s, ok := h.(ServerHooks); ok {
		SetServerHooks(s)
	}
}

func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
	serverHooks = NoopServerHooks{}
}
