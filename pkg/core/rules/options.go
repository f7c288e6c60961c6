package rules

import "github.com/matzehuels/flierkit/pkg/flier"

// Fallback style colours.
const (
	fallbackBackground = "#ffffff"
	fallbackText       = "#000000"
	fallbackAccent     = "#FFA726"
	fallbackHighlight  = "#F1C40F"
)

// StyleOptions returns the style options to offer for d: the AI-provided
// styles when present, otherwise three fallback styles.
func StyleOptions(d flier.Data) []flier.StyleOption {
	if d.AISuggestions != nil && len(d.AISuggestions.Styles) > 0 {
		return append([]flier.StyleOption(nil), d.AISuggestions.Styles...)
	}
	return fallbackStyles()
}

func fallbackStyles() []flier.StyleOption {
	base := flier.StyleOption{
		TextColor:       fallbackText,
		AccentColor:     fallbackAccent,
		HighlightColor:  fallbackHighlight,
		Pattern:         None,
		BackgroundImage: None,
	}

	solidGrid := base
	solidGrid.Background = flier.Background{Type: flier.BackgroundSolid, Color: fallbackBackground}
	solidGrid.Pattern = "grid"
	solidGrid.DesignRationale = "Default fallback style 1 (Solid + Grid)"

	gradient := base
	gradient.Background = flier.Background{
		Type:     flier.BackgroundGradient,
		Gradient: "linear-gradient(135deg, #ffffff 0%, #cccccc 100%)",
	}
	gradient.DesignRationale = "Default fallback style 2 (Gradient)"

	solid := base
	solid.Background = flier.Background{Type: flier.BackgroundSolid, Color: fallbackBackground}
	solid.DesignRationale = "Default fallback style 3 (Solid)"

	return []flier.StyleOption{solidGrid, gradient, solid}
}

// StyleBackground returns o's background with o's pattern layered on top
// when the background does not carry one already.
func StyleBackground(o flier.StyleOption) flier.Background {
	bg := o.Background
	if bg.CSS == "" && bg.Pattern == "" {
		if p, ok := PatternTemplate(o.Pattern); ok {
			bg.Pattern = p.CSS
			bg.PatternSize = p.Size
		}
	}
	if bg.CSS == "" && bg.Image == "" && o.BackgroundImage != "" && o.BackgroundImage != None {
		bg.Image = o.BackgroundImage
	}
	return bg
}
