package backend

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/integrations"
)

const okResponse = `{
	"success": true,
	"layout": {"type": "standard"},
	"backgroundOptions": [
		{"name": "Sunrise", "backgroundCSS": "linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)",
		 "textColor": "#333333", "accentColor": "#e65100", "description": "warm", "source": "ai",
		 "fontFamily": "Playfair Display"},
		{"name": "Photo", "backgroundImage": "https://img/1.png", "backgroundColor": "#000000",
		 "textColor": "#ffffff", "accentColor": "#ffcc00", "description": "photo", "source": "imagen"}
	],
	"layoutInfo": {"orientation": "portrait"},
	"contentInfo": {"title": "Grand Opening"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL+"/", time.Second, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestGenerate(t *testing.T) {
	var got Request
	var path, reqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		reqID = r.Header.Get(integrations.HeaderRequestID)
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(okResponse))
	})

	ctx := integrations.WithRequestID(context.Background(), "abc")
	resp, err := c.Generate(ctx, &flier.Request{
		Title:           "Grand Opening",
		PromotionalText: "Free coffee",
		BusinessType:    "Cafe",
		MoodLevel:       7,
		Orientation:     "portrait",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if path != GeneratePath || reqID != "abc" {
		t.Errorf("path = %q, request id = %q", path, reqID)
	}
	if got.Title != "Grand Opening" || got.BusinessType != "Cafe" || got.MoodLevel != 7 {
		t.Errorf("request body = %+v", got)
	}
	if len(resp.BackgroundOptions) != 2 || resp.LayoutInfo["orientation"] != "portrait" {
		t.Errorf("response = %+v", resp)
	}

	if bg := resp.BackgroundOptions[0].Background(); bg.CSS == "" {
		t.Errorf("css option background = %+v", bg)
	}
	if bg := resp.BackgroundOptions[1].Background(); bg.Type != flier.BackgroundImage || bg.Color != "#000000" {
		t.Errorf("image option background = %+v", bg)
	}
	if ty := resp.BackgroundOptions[0].Typography(); ty.TextAlign != "center" || ty.TitleWeight != 700 {
		t.Errorf("typography = %+v", ty)
	}
}

func TestRequestBodyOmitsEmptyMedia(t *testing.T) {
	data, _ := json.Marshal(RequestFrom(&flier.Request{Title: "x"}))
	var m map[string]any
	json.Unmarshal(data, &m)
	for _, k := range []string{"logo", "uploadedImage", "imagePreference"} {
		if _, ok := m[k]; ok {
			t.Errorf("%s should be omitted", k)
		}
	}
	for _, k := range []string{"title", "promotionalText", "moodLevel", "orientation"} {
		if _, ok := m[k]; !ok {
			t.Errorf("%s should be present", k)
		}
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"success false", http.StatusOK, `{"success": false, "error": "quota exceeded"}`},
		{"no options", http.StatusOK, `{"success": true, "backgroundOptions": []}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"bad gateway", http.StatusBadGateway, ``},
		{"undecodable", http.StatusOK, `<html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.Generate(context.Background(), &flier.Request{Title: "x"})
			if !errors.Is(err, errors.ErrCodeUpstreamGeneration) {
				t.Errorf("err = %v, want UPSTREAM_GENERATION_FAILURE", err)
			}
			if calls != 1 {
				t.Errorf("service called %d times, want exactly 1", calls)
			}
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url, time.Second, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Generate(context.Background(), &flier.Request{Title: "x"})
	if !errors.Is(err, errors.ErrCodeUpstreamGeneration) {
		t.Errorf("err = %v", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	// Registered after the server's Close so it runs first.
	t.Cleanup(func() { close(release) })
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Generate(ctx, &flier.Request{Title: "x"})
	if !errors.Is(err, errors.ErrCodeUpstreamGeneration) || !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v", err)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient("ftp://example.com", 0, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestTypographyFor(t *testing.T) {
	tests := []struct {
		font  string
		align string
		title int
	}{
		{"Georgia, serif", "center", 700},
		{"Montserrat", "right", 900},
		{"Arial", "right", 800},
		{"", "right", 800},
	}
	for _, tt := range tests {
		ty := TypographyFor(tt.font)
		if ty.TextAlign != tt.align || ty.TitleWeight != tt.title {
			t.Errorf("TypographyFor(%q) = %+v", tt.font, ty)
		}
	}
	if TypographyFor("").FontFamily != DefaultFontFamily {
		t.Error("empty font should use the default family")
	}
}
