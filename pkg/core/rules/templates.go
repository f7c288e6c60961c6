package rules

// Pattern is a decorative background layer.
type Pattern struct {
	CSS  string `json:"css"`
	Size string `json:"size"`
}

var patternTemplates = map[string]Pattern{
	"dots": {
		CSS:  "radial-gradient(#00000010 1px, transparent 1px)",
		Size: "20px 20px",
	},
	"grid": {
		CSS:  "linear-gradient(to right, #00000008 1px, transparent 1px), linear-gradient(to bottom, #00000008 1px, transparent 1px)",
		Size: "20px 20px",
	},
	"diagonal": {
		CSS:  "repeating-linear-gradient(45deg, #00000008, #00000008 1px, transparent 1px, transparent 10px)",
		Size: "20px 20px",
	},
	"waves": {
		CSS:  "repeating-radial-gradient(ellipse at 50% 50%, #00000000, #00000008 10px, #00000000 15px)",
		Size: "20px 20px",
	},
	"confetti": {
		CSS:  `url("data:image/svg+xml,%3Csvg width='100' height='100' viewBox='0 0 100 100' xmlns='http://www.w3.org/2000/svg'%3E%3Ccircle cx='11' cy='11' r='7' fill='%2399999920'/%3E%3Ccircle cx='59' cy='36' r='7' fill='%2399999920'/%3E%3Ccircle cx='34' cy='87' r='3' fill='%2399999920'/%3E%3Ccircle cx='90' cy='11' r='3' fill='%2399999920'/%3E%3C/svg%3E")`,
		Size: "150px 150px",
	},
}

var gradientTemplates = map[string]string{
	"warm":     "linear-gradient(135deg, #fff8f0 0%, #ffebe0 100%)",
	"cool":     "linear-gradient(135deg, #f0f8ff 0%, #e0f0ff 100%)",
	"sunset":   "linear-gradient(135deg, #fff6e5 0%, #ffd6cc 100%)",
	"mint":     "linear-gradient(135deg, #f0fff4 0%, #dcf5e8 100%)",
	"lavender": "linear-gradient(135deg, #f8f0ff 0%, #ebe0ff 100%)",
}

// PatternTemplate returns the named pattern.
func PatternTemplate(name string) (Pattern, bool) {
	p, ok := patternTemplates[name]
	return p, ok
}

// GradientTemplate returns the named gradient.
func GradientTemplate(name string) (string, bool) {
	g, ok := gradientTemplates[name]
	return g, ok
}

// PatternNames lists the pattern templates in sorted order.
func PatternNames() []string {
	return sortedKeys(patternTemplates)
}

// GradientNames lists the gradient templates in sorted order.
func GradientNames() []string {
	return sortedKeys(gradientTemplates)
}
