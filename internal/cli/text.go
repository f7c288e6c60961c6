package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/config"
	"github.com/matzehuels/flierkit/pkg/core/direction"
	"github.com/matzehuels/flierkit/pkg/core/sizing"
)

// directionCommand creates the direction command.
func (c *CLI) directionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "direction <text>...",
		Short: "Detect whether text reads left-to-right or right-to-left",
		Long: `Detect whether text reads left-to-right or right-to-left.

Hebrew letters are counted against Latin letters; the text is right-to-left
only when Hebrew is the strict majority.`,
		Example: `  flierkit direction "50% הנחה on all shoes"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			hebrew, latin := direction.Count(text)
			printKeyValue("direction", StyleHighlight.Render(string(direction.Detect(text))))
			printKeyValue("hebrew", StyleNumber.Render(fmt.Sprint(hebrew)))
			printKeyValue("latin", StyleNumber.Render(fmt.Sprint(latin)))
			return nil
		},
	}
}

// sizeCommand creates the size command.
func (c *CLI) sizeCommand() *cobra.Command {
	var (
		width     float64
		priority  int
		wrapWidth float64
	)

	cmd := &cobra.Command{
		Use:   "size [text]...",
		Short: "Compute the font size for a priority and optionally wrap text",
		Example: `  flierkit size --width 800 --priority 1
  flierkit size --width 400 --priority 3 "Free coffee all weekend long"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			px, err := sizing.FontSize(width, priority)
			if err != nil {
				return err
			}
			printKeyValue("font size", StyleNumber.Render(fmt.Sprintf("%dpx", px)))
			printKeyValue("multiplier", fmt.Sprintf("%.1f", sizing.Multiplier(priority)))

			if len(args) == 0 {
				return nil
			}
			maxWidth := wrapWidth
			if maxWidth <= 0 {
				maxWidth = width
			}
			words, err := sizing.WordsPerLine(maxWidth, float64(px))
			if err != nil {
				return err
			}
			wrapped, err := sizing.Wrap(strings.Join(args, " "), maxWidth, float64(px))
			if err != nil {
				return err
			}
			printKeyValue("words/line", StyleNumber.Render(fmt.Sprint(words)))
			printNewline()
			fmt.Println(wrapped)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", config.DefaultContainerWidth, "container width in pixels")
	cmd.Flags().IntVarP(&priority, "priority", "p", 3, "element priority (1 is most prominent)")
	cmd.Flags().Float64Var(&wrapWidth, "wrap-width", 0, "line width in pixels for wrapping (default: container width)")

	return cmd
}
