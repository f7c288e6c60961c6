// Package complexity scores how visually busy a flyer background is.
//
// A background arrives as a CSS-like description (for example
// "linear-gradient(135deg, #fff8f0 0%, #ffebe0 100%)"). [Analyze] looks for a
// handful of cheap signals and turns them into a coarse [Tier]:
//
//	gradient present                      +1
//	more than 2 distinct #rrggbb colours  +2
//	radial or conic pattern               +2
//	embedded image (url( or image)        +3
//
// A score of 2 or less is [Low], 3 to 5 is [Medium], anything above is [High].
// The signals are plain substring tests; no CSS parsing is attempted.
package complexity

import (
	"fmt"
	"regexp"
	"strings"
)

// Tier is a coarse classification of background complexity.
type Tier string

const (
	Low    Tier = "low"
	Medium Tier = "medium"
	High   Tier = "high"
)

// Score weights and tier thresholds.
const (
	gradientWeight = 1
	colorsWeight   = 2
	patternWeight  = 2
	imageWeight    = 3

	// minColors is the number of distinct hex colours that must be exceeded
	// for a background to count as multi-coloured.
	minColors = 2

	lowMax    = 2
	mediumMax = 5
)

var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// Profile is the result of analysing a background.
type Profile struct {
	HasGradient       bool `json:"has_gradient" bson:"has_gradient"`
	HasMultipleColors bool `json:"has_multiple_colors" bson:"has_multiple_colors"`
	HasPatterns       bool `json:"has_patterns" bson:"has_patterns"`
	HasImages         bool `json:"has_images" bson:"has_images"`
	Score             int  `json:"score" bson:"score"`
	Tier              Tier `json:"tier" bson:"tier"`
}

// Analyze derives a Profile from a background description.
func Analyze(background string) Profile {
	p := Profile{
		HasGradient:       strings.Contains(background, "gradient"),
		HasMultipleColors: DistinctColors(background) > minColors,
		HasPatterns:       strings.Contains(background, "radial") || strings.Contains(background, "conic"),
		HasImages:         strings.Contains(background, "url(") || strings.Contains(background, "image"),
	}

	if p.HasGradient {
		p.Score += gradientWeight
	}
	if p.HasMultipleColors {
		p.Score += colorsWeight
	}
	if p.HasPatterns {
		p.Score += patternWeight
	}
	if p.HasImages {
		p.Score += imageWeight
	}
	p.Tier = TierForScore(p.Score)
	return p
}

// AnalyzeDescriptor analyses the CSS form of a structured background.
func AnalyzeDescriptor(d fmt.Stringer) Profile {
	return Analyze(d.String())
}

// TierForScore maps a complexity score onto a tier.
func TierForScore(score int) Tier {
	switch {
	case score <= lowMax:
		return Low
	case score <= mediumMax:
		return Medium
	default:
		return High
	}
}

// DistinctColors counts the distinct 6-digit hex colours in s.
// Colours are compared case-insensitively, so #FFFFFF and #ffffff are one colour.
func DistinctColors(s string) int {
	seen := make(map[string]struct{})
	for _, c := range hexColorRe.FindAllString(s, -1) {
		seen[strings.ToLower(c)] = struct{}{}
	}
	return len(seen)
}

// ParseTier converts a string into a Tier. Unknown values report ok=false;
// callers that need a value anyway should use [Tier.OrDefault].
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case Low:
		return Low, true
	case Medium:
		return Medium, true
	case High:
		return High, true
	}
	return Tier(s), false
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t == Low || t == Medium || t == High
}

// OrDefault returns t when it is valid and Medium otherwise.
func (t Tier) OrDefault() Tier {
	if t.Valid() {
		return t
	}
	return Medium
}
