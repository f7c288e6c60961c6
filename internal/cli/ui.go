package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleLink      = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleFieldKey    = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed    = lipgloss.NewStyle().Foreground(colorGray)
)

// Tier badges follow the chrome each tier gets: green for plain backgrounds
// that allow the centre, red for busy ones that push text to the edges.
var tierStyles = map[complexity.Tier]lipgloss.Style{
	complexity.Low:    lipgloss.NewStyle().Foreground(colorGreen),
	complexity.Medium: lipgloss.NewStyle().Foreground(colorYellow),
	complexity.High:   lipgloss.NewStyle().Foreground(colorRed),
}

// statusIcons maps each status line kind to its glyph and colour.
var statusIcons = map[string]struct {
	glyph string
	style lipgloss.Style
}{
	"success": {"✓", lipgloss.NewStyle().Foreground(colorGreen)},
	"error":   {"✗", lipgloss.NewStyle().Foreground(colorRed)},
	"warning": {"!", lipgloss.NewStyle().Foreground(colorYellow)},
	"info":    {"›", lipgloss.NewStyle().Foreground(colorGray)},
}

// =============================================================================
// Status lines
// =============================================================================

func printStatus(kind, msg string) {
	icon := statusIcons[kind]
	fmt.Println(icon.style.Render(icon.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus("success", fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus("error", fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus("warning", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus("info", fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printKeyValue prints one field of a profile, record or rules listing.
func printKeyValue(key, value string) {
	fmt.Println(styleFieldKey.Render(key) + " " + StyleValue.Render(value))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Layout summaries
// =============================================================================

// tierBadge renders a tier name in its tier colour. Unknown tiers render
// unstyled.
func tierBadge(tier complexity.Tier) string {
	if s, ok := tierStyles[tier]; ok {
		return s.Render(string(tier))
	}
	return string(tier)
}

// printStats prints the one-line summary of a composed layout:
// tier, text and media record counts, and whether it came from the cache.
func printStats(tier complexity.Tier, textCount, mediaCount int, cached bool) {
	var parts []string
	if tier != "" {
		parts = append(parts, tierBadge(tier)+StyleDim.Render(" tier"))
	}
	if textCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d text", textCount)))
	}
	if mediaCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d media", mediaCount)))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleComputed.Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}
