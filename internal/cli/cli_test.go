package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/flierkit/pkg/config"
	"github.com/matzehuels/flierkit/pkg/errors"
	flierio "github.com/matzehuels/flierkit/pkg/io"
)

const requestTOML = `
id = "opening"
title = "Grand Opening"
promotionalText = "Free coffee all weekend for every visitor"
cta = "Visit us"
colorScheme = "warm"
background = "url(photo.jpg), radial-gradient(circle, #ff0000, #00ff00)"
`

// setupEnv isolates config and cache lookups in a temp dir.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(config.EnvBackendURL, "")
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(args ...string) error {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"json", []string{"json"}},
		{"json, SVG,,dot", []string{"json", "svg", "dot"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input string
		many          bool
		want          string
	}{
		{"", "flyers/opening.toml", false, "flyers/opening"},
		{"out/layout.svg", "opening.toml", false, "out/layout"},
		{"out/layout", "opening.toml", false, "out/layout"},
		{"out/layout.png", "opening.toml", false, "out/layout.png"},
		{"out", "flyers/opening.toml", true, "out/opening"},
		{"", "flyers/opening.toml", true, "flyers/opening"},
	}
	for _, tt := range tests {
		if got := outputBase(tt.output, tt.input, tt.many); got != tt.want {
			t.Errorf("outputBase(%q, %q, %v) = %q, want %q", tt.output, tt.input, tt.many, got, tt.want)
		}
	}
}

func TestVariantSlug(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want string
	}{
		{"Warm Sunset", 0, "warm-sunset"},
		{"fallback-2", 1, "fallback-2"},
		{"  Ocean / Breeze!  ", 0, "ocean-breeze"},
		{"שקיעה חמה", 0, "שקיעה-חמה"},
		{"***", 2, "option3"},
	}
	for _, tt := range tests {
		if got := variantSlug(tt.name, tt.i); got != tt.want {
			t.Errorf("variantSlug(%q, %d) = %q, want %q", tt.name, tt.i, got, tt.want)
		}
	}
}

func TestComposeCommand(t *testing.T) {
	dir := setupEnv(t)
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)

	if err := runCLI("compose", in, "-f", "json,dot", "--width", "400"); err != nil {
		t.Fatalf("compose: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "opening.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	l, err := flierio.ReadLayout(f)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.RequestID != "opening" || l.ContainerWidth != 400 || len(l.Records) != 3 {
		t.Errorf("unexpected layout: %+v", l)
	}
	if _, err := os.Stat(filepath.Join(dir, "opening.dot")); err != nil {
		t.Errorf("dot artifact missing: %v", err)
	}

	// The file cache lands under XDG_CACHE_HOME.
	entries, err := os.ReadDir(filepath.Join(dir, "cache", appName))
	if err != nil || len(entries) == 0 {
		t.Errorf("cache dir is empty: %v", err)
	}
}

func TestComposeCommandBatch(t *testing.T) {
	dir := setupEnv(t)
	a := writeFile(t, filepath.Join(dir, "a.toml"), requestTOML)
	b := writeFile(t, filepath.Join(dir, "b.json"), `{"id":"b","title":"Second"}`)
	out := filepath.Join(dir, "out")

	if err := runCLI("compose", a, b, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("compose: %v", err)
	}
	for _, name := range []string{"a.json", "b.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestComposeCommandErrors(t *testing.T) {
	dir := setupEnv(t)
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)
	bad := writeFile(t, filepath.Join(dir, "bad.json"), `{"elements":[{"role":"image","priority":1}]}`)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown format", []string{"compose", in, "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"negative width", []string{"compose", in, "--width", "-1"}, errors.ErrCodeInvalidLayoutParameter},
		{"invalid element", []string{"compose", bad}, errors.ErrCodeInvalidElement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGenerateCommandFallback(t *testing.T) {
	dir := setupEnv(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success":false,"error":"model offline"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)

	err := runCLI("generate", in, "--backend", srv.URL, "--no-cache")
	if !errors.Is(err, errors.ErrCodeUpstreamGeneration) {
		t.Fatalf("error = %v, want upstream failure", err)
	}

	if err := runCLI("generate", in, "--backend", srv.URL, "--no-cache", "--fallback"); err != nil {
		t.Fatalf("generate --fallback: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "opening_fallback-*.json"))
	if len(matches) != 3 {
		t.Errorf("fallback artifacts = %v, want 3", matches)
	}
}

func TestZonesCommand(t *testing.T) {
	setupEnv(t)
	if err := runCLI("zones", "high"); err != nil {
		t.Errorf("zones high: %v", err)
	}
	if err := runCLI("zones", "extreme"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zones extreme error = %v, want invalid input", err)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	dir := setupEnv(t)
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)

	if err := runCLI("analyze", "--json", "#ffffff"); err != nil {
		t.Errorf("analyze: %v", err)
	}
	if err := runCLI("analyze", "--file", in); err != nil {
		t.Errorf("analyze --file: %v", err)
	}
	if err := runCLI("analyze"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("analyze without input error = %v", err)
	}
}

func TestSizeCommand(t *testing.T) {
	setupEnv(t)
	if err := runCLI("size", "--width", "400", "-p", "1", "Free coffee all weekend long"); err != nil {
		t.Errorf("size: %v", err)
	}
	if err := runCLI("size", "--width", "0"); !errors.Is(err, errors.ErrCodeInvalidLayoutParameter) {
		t.Errorf("size --width 0 error = %v", err)
	}
}

func TestTranslateCommand(t *testing.T) {
	setupEnv(t)
	if err := runCLI("translate", "בית קפה"); err != nil {
		t.Errorf("translate: %v", err)
	}
	if err := runCLI("translate", "--list", "-c", "audience"); err != nil {
		t.Errorf("translate --list: %v", err)
	}
	if err := runCLI("translate", "-c", "colours", "x"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown category error = %v", err)
	}
}

func TestRulesCommand(t *testing.T) {
	dir := setupEnv(t)
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)
	if err := runCLI("rules", in, "--styles"); err != nil {
		t.Errorf("rules: %v", err)
	}
	if err := runCLI("rules", in, "--json"); err != nil {
		t.Errorf("rules --json: %v", err)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := setupEnv(t)
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)
	if err := runCLI("compose", in); err != nil {
		t.Fatal(err)
	}

	cacheDir := filepath.Join(dir, "cache", appName)
	if err := runCLI("cache", "path"); err != nil {
		t.Errorf("cache path: %v", err)
	}
	if err := runCLI("cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, _ := os.ReadDir(cacheDir)
	if len(entries) != 0 {
		t.Errorf("cache still holds %d entries", len(entries))
	}
}

func TestConfigFlag(t *testing.T) {
	dir := setupEnv(t)
	cfg := writeFile(t, filepath.Join(dir, "flierkit.toml"), "container_width = -5\n")
	in := writeFile(t, filepath.Join(dir, "opening.toml"), requestTOML)

	err := runCLI("--config", cfg, "compose", in)
	if !errors.Is(err, errors.ErrCodeInvalidLayoutParameter) {
		t.Errorf("error = %v, want invalid layout parameter", err)
	}

	if err := runCLI("--config", filepath.Join(dir, "missing.toml"), "compose", in); err == nil {
		t.Error("a missing explicit config file should fail")
	}
}

func TestCompletionCommand(t *testing.T) {
	for shell := range completionGenerators {
		if err := runCLI("completion", shell); err != nil {
			t.Errorf("completion %s: %v", shell, err)
		}
	}
	if err := runCLI("completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
