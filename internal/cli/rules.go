package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/core/rules"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/i18n"
	flierio "github.com/matzehuels/flierkit/pkg/io"
)

// rulesCommand creates the rules command.
func (c *CLI) rulesCommand() *cobra.Command {
	var (
		asJSON     bool
		showStyles bool
	)

	cmd := &cobra.Command{
		Use:   "rules <request.{json,toml}>",
		Short: "Show the styling decisions the rules engine makes for a request",
		Long: `Show the styling decisions the rules engine makes for a request.

Colour scheme, business type, target audience and style preference are
applied in that order; AI suggestions in the request override them. Hebrew
business types and audiences are translated first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flierio.ImportRequest(args[0])
			if err != nil {
				return err
			}
			req = i18n.New(c.Logger).TranslateRequest(req, req.Language)

			cfg := rules.Generate(req.RulesData())
			opts := rules.StyleOptions(req.RulesData())
			if asJSON {
				out := struct {
					rules.Config
					Styles []rulesStyle `json:"styles,omitempty"`
				}{Config: cfg}
				if showStyles {
					for _, o := range opts {
						out.Styles = append(out.Styles, rulesStyle{Option: o, Background: rules.StyleBackground(o).String()})
					}
				}
				return printJSON(out)
			}

			printRulesConfig(cfg)
			if showStyles {
				printNewline()
				for i, o := range opts {
					printInfo("Style %d", i+1)
					printKeyValue("background", rules.StyleBackground(o).String())
					printKeyValue("text", o.TextColor)
					printKeyValue("accent", o.AccentColor)
					if o.DesignRationale != "" {
						printDetail("%s", o.DesignRationale)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the configuration as JSON")
	cmd.Flags().BoolVar(&showStyles, "styles", false, "also list the style options offered for the request")

	return cmd
}

type rulesStyle struct {
	Option     flier.StyleOption `json:"option"`
	Background string            `json:"background"`
}

func printRulesConfig(cfg rules.Config) {
	printKeyValue("layout", cfg.Layout)
	printKeyValue("template", cfg.Template)
	printKeyValue("pattern", cfg.PatternType)
	printKeyValue("gradient", cfg.GradientType)
	printKeyValue("grid", cfg.GridSize)
	printKeyValue("background", cfg.Background().String())

	keys := make([]string, 0, len(cfg.ColorApplications))
	for k := range cfg.ColorApplications {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	for _, k := range keys {
		printKeyValue(k, cfg.ColorApplications[k])
	}

	p := cfg.ImagePosition()
	printKeyValue("image", fmt.Sprintf("%g%%, %g%%", p.X, p.Y))
	printNewline()
	fmt.Println(decisionsTable(cfg.Decisions))
}

func decisionsTable(decisions []rules.Decision) string {
	rows := make([][]string, len(decisions))
	for i, d := range decisions {
		rows[i] = []string{d.Category, d.Decision, d.Reason}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Decision", "Reason").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 2:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
