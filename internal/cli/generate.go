package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/integrations"
	"github.com/matzehuels/flierkit/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags      composeFlags
		backendURL string
		fallback   bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "generate <request.{json,toml}>",
		Short: "Generate background options and compose a layout for each",
		Long: `Generate background options and compose a layout for each.

The request is sent to the generation service, which answers with a set of
background options. Every option is composed like 'compose' would, and its
artifacts are written as <base>_<option>.<format>.

With --fallback, a failing service is replaced by the rules engine's
built-in styles instead of failing the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], flags, backendURL, fallback, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&backendURL, "backend", "", "generation service URL (overrides the config)")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "use rule-based styles when the service fails")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the generation result as JSON instead of writing files")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, input string, flags composeFlags, backendURL string, fallback, asJSON bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	opts, err := flags.options(c)
	if err != nil {
		return err
	}
	opts.Fallback = fallback

	req, err := loadRequest(input, cfg)
	if err != nil {
		return fmt.Errorf("load request %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	ctx = integrations.WithRequestID(ctx, uuid.NewString())
	c.Logger.Debug("generating", "request_id", integrations.RequestID(ctx), "backend", cfg.BackendURL)

	spinner := newSpinnerWithContext(ctx, "Generating backgrounds...")
	spinner.Start()
	gen, err := runner.Generate(ctx, req, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate: %w", err)
	}
	spinner.Stop()

	if asJSON {
		return printJSON(gen)
	}

	if gen.Fallback {
		printWarning("Generation service failed, using rule-based styles")
		printDetail("%s", gen.Cause)
	}

	base := basePath(flags.output, input)
	for i, v := range gen.Variants {
		if err := c.writeVariant(ctx, runner, v, opts, fmt.Sprintf("%s_%s", base, variantSlug(v.Name, i))); err != nil {
			return fmt.Errorf("variant %q: %w", v.Name, err)
		}
	}
	printSuccess("Generated %d variant(s)", len(gen.Variants))
	return nil
}

func (c *CLI) writeVariant(ctx context.Context, runner *pipeline.Runner, v pipeline.Variant, opts pipeline.Options, base string) error {
	artifacts, _, err := runner.RenderWithCacheInfo(ctx, v.Layout, opts)
	if err != nil {
		return err
	}
	paths, err := writeArtifacts(ctx, artifacts, opts.Formats, base)
	if err != nil {
		return err
	}

	printInfo("%s %s", StyleValue.Render(v.Name), StyleDim.Render("("+v.Source+")"))
	printDetail("%s · %s", v.Style.Background.String(), v.Typography.FontFamily)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// variantSlug turns an option name into a file name part. Names without any
// letters or digits fall back to the option's position.
func variantSlug(name string, i int) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	if s := strings.TrimSuffix(b.String(), "-"); s != "" {
		return s
	}
	return fmt.Sprintf("option%d", i+1)
}
