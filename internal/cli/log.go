// Package cli implements the flierkit command-line interface.
//
// The CLI composes flyer layouts from request files, explains the decisions
// behind them and serves the same pipeline over HTTP. It is built on cobra,
// prints with lipgloss and logs through charmbracelet/log.
//
// # Commands
//
//   - compose: place a request's elements and write JSON, DOT or SVG
//   - generate: fetch background options and compose each one
//   - analyze, zones: background complexity and the safe zones per tier
//   - direction, size: text direction, font sizing and wrapping
//   - translate, rules: Hebrew lookups and the rules engine's decisions
//   - serve: the HTTP API
//   - cache: clear or locate the cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also attached to the command context so helpers can reach it.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes timestamped ("15:04:05.00") log lines to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command run. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	steps  int
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// step logs an intermediate stage at debug level with the time spent so far.
func (p *progress) step(stage string, keyvals ...any) {
	p.steps++
	p.logger.Debug(stage, append([]any{"step", p.steps, "elapsed", p.elapsed()}, keyvals...)...)
}

// done logs the final message with the total elapsed time.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", p.elapsed())...)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for helpers that only see a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
