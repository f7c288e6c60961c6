package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/pipeline"
)

// composeFlags holds the flags shared by compose and generate.
type composeFlags struct {
	output  string
	formats string
	width   float64
	noCache bool
	refresh bool
}

func (f *composeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output base path (one input) or directory (several inputs)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): json (default), dot, svg (comma-separated)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "container width in pixels (overrides the request)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results but still store new ones")
}

func (f *composeFlags) options(c *CLI) (pipeline.Options, error) {
	opts := pipeline.Options{
		ContainerWidth: f.width,
		Formats:        parseFormats(f.formats),
		Refresh:        f.refresh,
		Logger:         c.Logger,
	}
	return opts, opts.ValidateAndSetDefaults()
}

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	var (
		flags       composeFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "compose <request.{json,toml}>...",
		Short: "Compose flyer layouts from request files",
		Long: `Compose flyer layouts from request files.

Each request is scored for background complexity and its text elements are
placed round-robin over the safe zones of that tier, sized by priority and
wrapped to the text window. The layout is written as JSON by default; DOT
and SVG render a zone map of the placement.

Several requests are composed concurrently. Results are cached, so running
the same request again is instant.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive && len(args) > 1 {
				return fmt.Errorf("--interactive takes a single request file")
			}
			return c.runCompose(cmd.Context(), args, flags, interactive)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the composed records")

	return cmd
}

// runCompose loads every request, composes them and writes the artifacts.
func (c *CLI) runCompose(ctx context.Context, inputs []string, flags composeFlags, interactive bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts, err := flags.options(c)
	if err != nil {
		return err
	}

	reqs := make([]*flier.Request, len(inputs))
	for i, in := range inputs {
		if reqs[i], err = loadRequest(in, cfg); err != nil {
			return fmt.Errorf("load request %s: %w", in, err)
		}
	}

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Composing %d layout(s)...", len(reqs)))
	spinner.Start()

	var (
		comps  []*pipeline.Composition
		cached bool
	)
	if len(reqs) == 1 {
		var comp *pipeline.Composition
		comp, cached, err = runner.ComposeWithCacheInfo(ctx, reqs[0], opts)
		comps = []*pipeline.Composition{comp}
	} else {
		comps, err = runner.ComposeBatch(ctx, reqs, opts)
	}
	if err != nil {
		spinner.StopWithError("Composition failed")
		return fmt.Errorf("compose: %w", err)
	}
	prog.step("composed", "layouts", len(comps), "cached", cached)

	spinner.SetMessage(fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	rendered := make([]map[string][]byte, len(comps))
	for i, comp := range comps {
		if rendered[i], _, err = runner.RenderWithCacheInfo(ctx, comp.Layout, opts); err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("%s: %w", inputs[i], err)
		}
	}
	spinner.Stop()

	for i, comp := range comps {
		base := outputBase(flags.output, inputs[i], len(inputs) > 1)
		if err := writeComposition(ctx, comp, rendered[i], opts.Formats, base, cached); err != nil {
			return fmt.Errorf("%s: %w", inputs[i], err)
		}
	}
	prog.done("Composed", "layouts", len(comps), "formats", strings.Join(opts.Formats, ","))

	if interactive {
		return browseLayout(comps[0].Layout)
	}
	return nil
}

// writeComposition writes a rendered composition and reports what was written.
func writeComposition(ctx context.Context, comp *pipeline.Composition, artifacts map[string][]byte, formats []string, base string, cached bool) error {
	paths, err := writeArtifacts(ctx, artifacts, formats, base)
	if err != nil {
		return err
	}

	l := comp.Layout
	text := len(l.TextRecords())
	printSuccess("Layout %s", displayID(l.RequestID))
	printStats(l.Profile.Tier, text, len(l.Records)-text, cached)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// outputBase picks where a request's artifacts go. With several inputs the
// output flag names a directory.
func outputBase(output, input string, many bool) string {
	if !many || output == "" {
		return basePath(output, input)
	}
	name := filepath.Base(input)
	return filepath.Join(output, strings.TrimSuffix(name, filepath.Ext(name)))
}

// browseLayout runs the record browser and prints the chosen record.
func browseLayout(l *flier.Layout) error {
	final, err := tea.NewProgram(NewLayoutModel(l)).Run()
	if err != nil {
		return err
	}
	m, ok := final.(LayoutModel)
	if !ok || m.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	printNewline()
	fmt.Print(recordDetail(*m.Selected))
	if m.Selected.Text != "" {
		printNewline()
		fmt.Println(m.Selected.Text)
	}
	return nil
}
