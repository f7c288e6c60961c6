package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/styles"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/errors"
	flierio "github.com/matzehuels/flierkit/pkg/io"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		fromFile string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [background]",
		Short: "Score the visual complexity of a background",
		Long: `Score the visual complexity of a background.

The background is a CSS background value, for example
"linear-gradient(#ff0000, #00ff00)". Use --file to analyze the background of
a request file instead.`,
		Example: `  flierkit analyze "#ffffff"
  flierkit analyze "url(photo.jpg), radial-gradient(#f00, #0f0)"
  flierkit analyze --file request.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			background, err := backgroundArg(args, fromFile)
			if err != nil {
				return err
			}
			p := complexity.Analyze(background)
			if asJSON {
				return printJSON(p)
			}
			printProfile(p)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "file", "", "read the background from a request file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")

	return cmd
}

func backgroundArg(args []string, fromFile string) (string, error) {
	switch {
	case fromFile != "" && len(args) > 0:
		return "", errors.New(errors.ErrCodeInvalidInput, "pass a background or --file, not both")
	case fromFile != "":
		req, err := flierio.ImportRequest(fromFile)
		if err != nil {
			return "", err
		}
		return req.Background.String(), nil
	case len(args) == 1:
		return args[0], nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no background given")
}

func printProfile(p complexity.Profile) {
	printKeyValue("tier", tierBadge(p.Tier))
	printKeyValue("score", StyleNumber.Render(fmt.Sprint(p.Score)))

	var signals []string
	for _, s := range []struct {
		on   bool
		name string
	}{
		{p.HasGradient, "gradient"},
		{p.HasMultipleColors, "multiple colors"},
		{p.HasPatterns, "patterns"},
		{p.HasImages, "images"},
	} {
		if s.on {
			signals = append(signals, s.name)
		}
	}
	if len(signals) == 0 {
		signals = []string{"none"}
	}
	printKeyValue("signals", strings.Join(signals, ", "))

	names := make([]string, 0)
	for _, z := range zone.SafeZones(p.Tier) {
		names = append(names, string(z))
	}
	printKeyValue("safe zones", strings.Join(names, ", "))

	ch := styles.ChromeFor(p.Tier)
	printKeyValue("window", fmt.Sprintf("%s, opacity %.2f", ch.BoxStyle, ch.BackgroundOpacity))
}

// =============================================================================
// zones
// =============================================================================

// zonesCommand creates the zones command.
func (c *CLI) zonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "zones [tier]",
		Short:     "List the safe zones and anchors for each complexity tier",
		ValidArgs: []string{string(complexity.Low), string(complexity.Medium), string(complexity.High)},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers := []complexity.Tier{complexity.Low, complexity.Medium, complexity.High}
			if len(args) == 1 {
				tier, ok := complexity.ParseTier(args[0])
				if !ok {
					return errors.New(errors.ErrCodeInvalidInput, "unknown tier %q (want low, medium or high)", args[0])
				}
				tiers = []complexity.Tier{tier}
			}
			fmt.Println(zonesTable(tiers))
			return nil
		},
	}
}

func zonesTable(tiers []complexity.Tier) string {
	var rows [][]string
	for _, tier := range tiers {
		for i, z := range zone.SafeZones(tier) {
			name := ""
			if i == 0 {
				name = string(tier)
			}
			rows = append(rows, []string{name, fmt.Sprint(i + 1), string(z), zone.AnchorFor(z).String()})
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tier", "#", "Zone", "Anchor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
