package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every hook event as a debug log line.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to logger, or log.Default() if nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnComposeStart(_ context.Context, requestID string, elementCount int) {
	h.Logger.Debug("compose start", "request", requestID, "elements", elementCount)
}

func (h *LogHooks) OnComposeComplete(_ context.Context, requestID, tier string, recordCount int, d time.Duration, err error) {
	h.done("compose", err, "request", requestID, "tier", tier, "records", recordCount, "duration", d)
}

func (h *LogHooks) OnGenerateStart(_ context.Context, requestID string) {
	h.Logger.Debug("generate start", "request", requestID)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, requestID string, optionCount int, d time.Duration, err error) {
	h.done("generate", err, "request", requestID, "options", optionCount, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", err, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.Logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.Logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.Logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("backend request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.Logger.Debug("backend response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Debug("backend error", "method", method, "host", host, "path", path, "err", err)
}

func (h *LogHooks) OnServe(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Debug("served", "method", method, "route", route, "status", status, "duration", d)
}

func (h *LogHooks) done(op string, err error, keyvals ...any) {
	if err != nil {
		h.Logger.Debug(op+" failed", append(keyvals, "err", err)...)
		return
	}
	h.Logger.Debug(op+" done", keyvals...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
