package sizing

import (
	"strings"
	"testing"

	"github.com/matzehuels/flierkit/pkg/errors"
)

func TestFontSize(t *testing.T) {
	tests := []struct {
		width    float64
		priority int
		want     int
	}{
		{200, 1, 21},  // base clamps to 14
		{1000, 3, 30}, // 30 * 1.0
		{1000, 1, 45},
		{1000, 2, 36},
		{1000, 4, 24},
		{1000, 9, 30}, // unknown priority uses 1.0
		{800, 1, 36},
		{100, 4, 11},
	}

	for _, tt := range tests {
		got, err := FontSize(tt.width, tt.priority)
		if err != nil {
			t.Fatalf("FontSize(%v, %d): %v", tt.width, tt.priority, err)
		}
		if got != tt.want {
			t.Errorf("FontSize(%v, %d) = %d, want %d", tt.width, tt.priority, got, tt.want)
		}
	}
}

func TestFontSizeInvalidWidth(t *testing.T) {
	for _, w := range []float64{0, -1} {
		_, err := FontSize(w, 1)
		if !errors.Is(err, errors.ErrCodeInvalidLayoutParameter) {
			t.Errorf("FontSize(%v) error = %v, want INVALID_LAYOUT_PARAMETER", w, err)
		}
	}
}

func TestFontSizeMonotonicInPriority(t *testing.T) {
	for _, w := range []float64{100, 400, 800, 1600} {
		prev := 1 << 30
		for p := 1; p <= 4; p++ {
			got, _ := FontSize(w, p)
			if got > prev {
				t.Errorf("FontSize(%v, %d) = %d exceeds priority %d size %d", w, p, got, p-1, prev)
			}
			prev = got
		}
	}
}

func TestWrap(t *testing.T) {
	// 300 / (20 * 0.6) = 25 words per line.
	text := strings.Repeat("word ", 30)
	got, err := Wrap(text, 300, 20)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if n := len(strings.Fields(lines[0])); n != 25 {
		t.Errorf("first line has %d words, want 25", n)
	}

	// 60 / (20 * 0.6) = 5 words per line.
	got, err = Wrap("a b c d e f g", 60, 20)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a b c d e\nf g" {
		t.Errorf("Wrap = %q", got)
	}
}

func TestWrapPreservesWords(t *testing.T) {
	text := "  Grand   opening\tthis Saturday\nat the  corner cafe "
	got, err := Wrap(text, 50, 16)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(strings.Fields(got), " ") != strings.Join(strings.Fields(text), " ") {
		t.Errorf("Wrap changed word sequence: %q", got)
	}
}

func TestWrapEmpty(t *testing.T) {
	got, err := Wrap("", 300, 20)
	if err != nil || got != "" {
		t.Errorf("Wrap(\"\") = %q, %v", got, err)
	}
}

func TestWrapInvalid(t *testing.T) {
	tests := []struct {
		name     string
		maxWidth float64
		fontSize float64
	}{
		{"zero width", 0, 20},
		{"zero font", 300, 0},
		{"negative font", 300, -4},
		{"too narrow", 5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap("hello world", tt.maxWidth, tt.fontSize)
			if !errors.Is(err, errors.ErrCodeInvalidLayoutParameter) {
				t.Errorf("err = %v, want INVALID_LAYOUT_PARAMETER", err)
			}
		})
	}
}
