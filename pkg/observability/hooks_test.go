package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestRegistryDefaults(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should default to NoopServerHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses []string
}

func (r *recordingCacheHooks) OnCacheHit(_ context.Context, kind string) {
	r.hits = append(r.hits, kind)
}

func (r *recordingCacheHooks) OnCacheMiss(_ context.Context, kind string) {
	r.misses = append(r.misses, kind)
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "layout")
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheSet(ctx, "layout", 512)

	if len(rec.hits) != 1 || len(rec.misses) != 1 || rec.hits[0] != "layout" {
		t.Errorf("hits %v misses %v", rec.hits, rec.misses)
	}
}

func TestRegisterPartialImplementation(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingCacheHooks{}
	Register(rec)

	if Cache() != rec {
		t.Error("Register should install the cache hooks")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Register should leave unimplemented sets alone")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Register(NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})))

	ctx := context.Background()
	Pipeline().OnComposeComplete(ctx, "opening", "high", 3, time.Millisecond, nil)
	Pipeline().OnGenerateComplete(ctx, "opening", 0, time.Second, errors.New("model offline"))
	Cache().OnCacheMiss(ctx, "generate")
	HTTP().OnResponse(ctx, "POST", "localhost:8081", "/api/flier/generate", 502, time.Second)
	Server().OnServe(ctx, "GET", "/api/zones/{tier}", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"compose done", "tier=high",
		"generate failed", "model offline",
		"cache miss", "kind=generate",
		"backend response", "status=502",
		"served", "route=/api/zones/{tier}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.OnCacheHit(context.Background(), "layout")
	if buf.Len() != 0 {
		t.Errorf("debug hook logged at info level: %q", buf.String())
	}
}
