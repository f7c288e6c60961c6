// Package sizing derives font sizes and line wrapping for flyer text.
//
// Both operations are approximations: font size scales with the container
// width and the element's priority, and wrapping assumes an average glyph
// width of 0.6em. Nothing here measures real glyphs.
package sizing

import (
	"math"
	"strings"

	"github.com/matzehuels/flierkit/pkg/errors"
)

const (
	// MinBaseSize is the floor for the width-derived base size in pixels.
	MinBaseSize = 14.0

	widthFactor = 0.03
	charWidthEm = 0.6
)

// multipliers scale the base size by priority. Priorities not listed use 1.0.
var multipliers = map[int]float64{
	1: 1.5,
	2: 1.2,
	3: 1.0,
	4: 0.8,
}

// Multiplier returns the font size multiplier for priority.
func Multiplier(priority int) float64 {
	if m, ok := multipliers[priority]; ok {
		return m
	}
	return 1.0
}

// FontSize returns the font size in pixels for an element of the given
// priority inside a container of containerWidth pixels.
func FontSize(containerWidth float64, priority int) (int, error) {
	if containerWidth <= 0 || math.IsNaN(containerWidth) || math.IsInf(containerWidth, 0) {
		return 0, errors.New(errors.ErrCodeInvalidLayoutParameter,
			"container width must be positive")
	}
	base := math.Max(containerWidth*widthFactor, MinBaseSize)
	return int(math.Round(base * Multiplier(priority))), nil
}

// WordsPerLine returns how many words fit on a line of maxWidth pixels at
// fontSize.
func WordsPerLine(maxWidth, fontSize float64) (int, error) {
	if fontSize <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidLayoutParameter, "font size must be positive")
	}
	if maxWidth <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidLayoutParameter, "max width must be positive")
	}
	n := int(math.Floor(maxWidth / (fontSize * charWidthEm)))
	if n <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidLayoutParameter,
			"max width too narrow for font size")
	}
	return n, nil
}

// Wrap breaks text into lines of at most WordsPerLine(maxWidth, fontSize)
// words, joined by "\n". Runs of whitespace collapse to a single space.
func Wrap(text string, maxWidth, fontSize float64) (string, error) {
	n, err := WordsPerLine(maxWidth, fontSize)
	if err != nil {
		return "", err
	}
	return strings.Join(Lines(strings.Fields(text), n), "\n"), nil
}

// Lines groups words into lines of at most n words each.
func Lines(words []string, n int) []string {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, (len(words)+n-1)/n)
	for i := 0; i < len(words); i += n {
		end := min(i+n, len(words))
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return lines
}
