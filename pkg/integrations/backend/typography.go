package backend

import "strings"

// DefaultFontFamily is used when an option names no font.
const DefaultFontFamily = "Roboto, sans-serif"

// Typography holds text settings derived from a font family.
type Typography struct {
	FontFamily    string  `json:"font_family"`
	LetterSpacing string  `json:"letter_spacing"`
	LineHeight    float64 `json:"line_height"`
	TextAlign     string  `json:"text_align"`
	TitleWeight   int     `json:"title_weight"`
	BodyWeight    int     `json:"body_weight"`
}

// TypographyFor derives letter spacing, line height, alignment and weights
// for fontFamily. Serif display faces get airy centred text, Montserrat gets
// heavy tight text, and everything else a clean professional setting.
func TypographyFor(fontFamily string) Typography {
	if fontFamily == "" {
		fontFamily = DefaultFontFamily
	}
	switch {
	case strings.Contains(fontFamily, "Georgia"), strings.Contains(fontFamily, "Playfair"):
		return Typography{fontFamily, "0.01em", 1.2, "center", 700, 400}
	case strings.Contains(fontFamily, "Montserrat"):
		return Typography{fontFamily, "-0.03em", 1.0, "right", 900, 600}
	default:
		return Typography{fontFamily, "-0.02em", 1.1, "right", 800, 400}
	}
}

// Typography derives the option's text settings.
func (o BackgroundOption) Typography() Typography {
	return TypographyFor(o.FontFamily)
}
