// Package rules turns a flyer's declared preferences into concrete styling
// decisions: colours, fonts, background pattern and gradient, and element
// positions.
//
// Rules are applied in a fixed order (colour scheme, business type, target
// audience, style preference) and AI suggestions, when present, are applied
// last so they override the deterministic choices. Every choice is recorded
// in the returned [Config]'s decision log.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/matzehuels/flierkit/pkg/flier"
)

// MaxDecisions bounds the decision log; older entries are dropped first.
const MaxDecisions = 50

// Decision categories.
const (
	CategoryColor    = "Color"
	CategoryGradient = "Gradient"
	CategoryBusiness = "Business"
	CategoryAudience = "Audience"
	CategoryStyle    = "Style"
	CategoryAI       = "AI"
)

// None marks an unset pattern or gradient.
const None = "none"

// Point is a position in percent of the flyer frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Decision is one logged rule application.
type Decision struct {
	Category string `json:"category"`
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Config is the outcome of applying the rules to a flyer.
type Config struct {
	Layout            string            `json:"layout"`
	ElementPositions  map[string]Point  `json:"element_positions"`
	ColorApplications map[string]string `json:"color_applications"`
	FontSelections    map[string]string `json:"font_selections"`
	PatternType       string            `json:"pattern_type"`
	GradientType      string            `json:"gradient_type"`
	GridSize          string            `json:"grid_size"`
	Template          string            `json:"template"`
	DesignRationale   string            `json:"design_rationale,omitempty"`
	Decisions         []Decision        `json:"decisions"`
}

func defaultConfig() Config {
	return Config{
		Layout: "standard",
		ElementPositions: map[string]Point{
			"image": {X: 50, Y: 40},
		},
		ColorApplications: map[string]string{
			"background":      "#ffffff",
			"title":           "#000000",
			"promotionalText": "#333333",
		},
		FontSelections: map[string]string{
			"title":           "Heebo",
			"promotionalText": "Assistant",
		},
		PatternType:  None,
		GradientType: None,
		GridSize:     "3x3",
		Template:     "modern",
	}
}

type colorRule struct {
	background, title string
}

var colorSchemes = map[string]struct {
	colorRule
	gradient string
}{
	"warm": {colorRule{"#fff8f0", "#773311"}, "warm"},
	"cool": {colorRule{"#f0f8ff", "#115577"}, "cool"},
}

var businessColors = map[string]colorRule{
	"cafe":       {"#fff8f0", "#5d4037"},
	"tech":       {"#e8f0fe", "#1a73e8"},
	"restaurant": {"#fff3e0", "#e65100"},
}

var audienceFonts = map[string]struct {
	title, promotional, label string
}{
	"families":      {"Rubik", "Assistant", "family-friendly"},
	"professionals": {"Arial", "Arial", "professional"},
	"youth":         {"Rubik", "Heebo", "youth-oriented"},
}

var stylePatterns = map[string]string{
	"modern":  "grid",
	"playful": "dots",
}

// engine accumulates one Generate call's decisions.
type engine struct {
	cfg Config
}

func (e *engine) log(category, decision, reason string) string {
	e.cfg.Decisions = append(e.cfg.Decisions, Decision{Category: category, Decision: decision, Reason: reason})
	if n := len(e.cfg.Decisions); n > MaxDecisions {
		e.cfg.Decisions = append([]Decision(nil), e.cfg.Decisions[n-MaxDecisions:]...)
	}
	return decision
}

// Generate applies the rules to d. It is deterministic and keeps no state
// between calls.
func Generate(d flier.Data) Config {
	e := &engine{cfg: defaultConfig()}
	e.applyColorScheme(d.ColorScheme)
	e.applyBusiness(d.BusinessType)
	e.applyAudience(d.TargetAudience)
	e.applyStyle(d.StylePreference)
	e.applySuggestions(d.AISuggestions)
	return e.cfg
}

func (e *engine) applyColorScheme(scheme string) {
	if scheme == "" {
		e.log(CategoryColor, "default", "No color scheme specified, using defaults")
		return
	}
	s, ok := colorSchemes[scheme]
	if !ok {
		e.log(CategoryColor, "default", fmt.Sprintf("Color scheme '%s' not recognized, using defaults", scheme))
		return
	}
	e.cfg.ColorApplications["background"] = e.log(CategoryColor, s.background, "Applied "+scheme+" color scheme background")
	e.cfg.ColorApplications["title"] = e.log(CategoryColor, s.title, "Applied "+scheme+" color scheme title")
	e.cfg.GradientType = e.log(CategoryGradient, s.gradient, "Applied "+scheme+" gradient for "+scheme+" color scheme")
}

func (e *engine) applyBusiness(business string) {
	if business == "" {
		e.log(CategoryBusiness, "default", "No business type specified, using defaults")
		return
	}
	c, ok := businessColors[business]
	if !ok {
		e.log(CategoryBusiness, "default", fmt.Sprintf("Business type '%s' not specifically handled, using defaults", business))
		return
	}
	e.cfg.ColorApplications["background"] = e.log(CategoryBusiness, c.background, "Applied "+business+"-specific background color")
	e.cfg.ColorApplications["title"] = e.log(CategoryBusiness, c.title, "Applied "+business+"-specific title color")
}

func (e *engine) applyAudience(audience string) {
	if audience == "" {
		e.log(CategoryAudience, "default", "No target audience specified, using defaults")
		return
	}
	f, ok := audienceFonts[audience]
	if !ok {
		e.log(CategoryAudience, "default", fmt.Sprintf("Target audience '%s' not specifically handled, using defaults", audience))
		return
	}
	e.cfg.FontSelections["title"] = e.log(CategoryAudience, f.title, "Applied "+f.label+" title font")
	e.cfg.FontSelections["promotionalText"] = e.log(CategoryAudience, f.promotional, "Applied "+f.label+" promotional text font")
}

func (e *engine) applyStyle(style string) {
	if style == "" {
		e.log(CategoryStyle, "default", "No style preference specified, using defaults")
		return
	}
	p, ok := stylePatterns[style]
	if !ok {
		e.log(CategoryStyle, "default", fmt.Sprintf("Style preference '%s' not specifically handled, using defaults", style))
		return
	}
	e.cfg.PatternType = e.log(CategoryStyle, p, "Applied "+p+" pattern for "+style+" style")
}

func (e *engine) applySuggestions(s *flier.Suggestions) {
	if s == nil {
		e.log(CategoryAI, "none", "No AI suggestions available, using deterministic rules only")
		return
	}
	e.log(CategoryAI, "suggestions", "Processing AI styling suggestions")

	if s.Layout != "" {
		e.cfg.Layout = e.log(CategoryAI, s.Layout, "Applied AI-suggested layout")
	}

	for _, name := range sortedKeys(s.ElementPositions) {
		pt := s.ElementPositions[name]
		cur, ok := e.cfg.ElementPositions[name]
		if !ok {
			cur = Point{X: 50, Y: 50}
		}
		x, ok := flier.Number(pt.X)
		if !ok {
			x = cur.X
		}
		y, ok := flier.Number(pt.Y)
		if !ok {
			y = cur.Y
		}
		e.cfg.ElementPositions[name] = Point{X: x, Y: y}
		e.log(CategoryAI, fmt.Sprintf("%s at (%g, %g)", name, x, y), "Applied AI-suggested position")
	}

	if len(s.ColorApplications) > 0 {
		colors := make(map[string]string, len(s.ColorApplications))
		for k, v := range s.ColorApplications {
			colors[k] = v
		}
		e.cfg.ColorApplications = colors
		e.log(CategoryAI, fmt.Sprintf("%d color applications", len(colors)),
			"Applied AI-suggested color applications (overriding deterministic rules)")
	}

	for _, key := range sortedKeys(s.FontSelections) {
		font := s.FontSelections[key]
		if strings.TrimSpace(font) == "" {
			continue
		}
		if _, ok := e.cfg.FontSelections[key]; ok {
			e.cfg.FontSelections[key] = e.log(CategoryAI, font, "Applied AI-suggested "+key+" font (overriding deterministic rule)")
		} else {
			e.log(CategoryAI, font, "Skipped applying AI-suggested "+key+" font (key not in default config)")
		}
	}

	if s.DesignRationale != "" {
		e.cfg.DesignRationale = s.DesignRationale
		e.log(CategoryAI, "designRationale", "Saved AI design rationale")
	}
}

// Background builds a background descriptor from the chosen gradient,
// pattern and background colour.
func (c Config) Background() flier.Background {
	bg := flier.Background{
		Type:  flier.BackgroundSolid,
		Color: c.ColorApplications["background"],
	}
	if g, ok := GradientTemplate(c.GradientType); ok {
		bg.Type = flier.BackgroundGradient
		bg.Gradient = g
	}
	if p, ok := PatternTemplate(c.PatternType); ok {
		bg.Pattern = p.CSS
		bg.PatternSize = p.Size
	}
	return bg
}

// ImagePosition returns the image centre in percent.
func (c Config) ImagePosition() Point {
	if p, ok := c.ElementPositions["image"]; ok {
		return p
	}
	return Point{X: 50, Y: 40}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	return keys
}
