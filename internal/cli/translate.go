package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/i18n"
)

// translateCommand creates the translate command.
func (c *CLI) translateCommand() *cobra.Command {
	var (
		category string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "translate [text]...",
		Short: "Translate Hebrew business types and audiences to English",
		Long: `Translate Hebrew business types and audiences to English.

Lookups are exact. Text without a translation is printed unchanged and a
warning is logged. Use --list to print a whole table.`,
		Example: `  flierkit translate "בית קפה"
  flierkit translate --category audience "משפחות"
  flierkit translate --list --category business`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := i18n.ParseCategory(category)
			if err != nil {
				return err
			}
			tr := i18n.New(c.Logger)

			if list {
				fmt.Println(entriesTable(cat, tr.Entries(cat)))
				return nil
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no text given")
			}
			fmt.Println(tr.Translate(strings.Join(args, " "), cat))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(i18n.BusinessTypes), "table: business or audience")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list every entry of the table")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(i18n.Categories))
		for i, cat := range i18n.Categories {
			names[i] = string(cat)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func entriesTable(cat i18n.Category, entries []i18n.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Source, e.Target}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(string(cat), "English").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleValue
			}
			return StyleDim
		})
	return t.Render()
}
