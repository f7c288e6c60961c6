package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/buildinfo"
	"github.com/matzehuels/flierkit/pkg/cache"
	"github.com/matzehuels/flierkit/pkg/config"
	"github.com/matzehuels/flierkit/pkg/flier"
	"github.com/matzehuels/flierkit/pkg/integrations/backend"
	flierio "github.com/matzehuels/flierkit/pkg/io"
	"github.com/matzehuels/flierkit/pkg/pipeline"
	"github.com/matzehuels/flierkit/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "flierkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means the default location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Flierkit composes flyer layouts that adapt to their background",
		Long: `Flierkit places flyer text on the parts of a background that stay readable.

It scores how busy a background is, picks safe zones for that tier, sizes
and wraps each text element, and styles the text windows so they hold up
against the background behind them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flierkit/config.toml)")

	root.AddCommand(c.composeCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.zonesCommand())
	root.AddCommand(c.directionCommand())
	root.AddCommand(c.sizeCommand())
	root.AddCommand(c.translateCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// openCache opens the cache backend named by cfg, or a null cache when
// noCache is set.
func openCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	opts, err := cfg.CacheOptions()
	if err != nil {
		return nil, err
	}
	if noCache {
		opts.Backend = cache.BackendNone
	}
	return cache.Open(ctx, opts)
}

// newRunner creates a pipeline runner for CLI use. The generation client is
// attached whenever a backend URL is configured.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	cc, err := openCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}

	runner := pipeline.NewRunner(cc, cfg.Keyer(), c.Logger)
	if cfg.BackendURL != "" {
		client, err := backend.NewClient(cfg.BackendURL, cfg.Timeout.Duration, c.Logger)
		if err != nil {
			cc.Close()
			return nil, err
		}
		runner.Backend = client
	}
	return runner, nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// loadRequest imports a request file and fills the container width from the
// config when the file leaves it unset.
func loadRequest(path string, cfg config.Config) (*flier.Request, error) {
	req, err := flierio.ImportRequest(path)
	if err != nil {
		return nil, err
	}
	if req.ContainerWidth <= 0 {
		req.ContainerWidth = cfg.ContainerWidth
	}
	return req, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. A known format
// extension on output is stripped as well.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered format next to base and returns the
// paths in format order.
func writeArtifacts(ctx context.Context, artifacts map[string][]byte, formats []string, base string) ([]string, error) {
	logger := loggerFromContext(ctx)
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, err
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, err
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(data))
		paths = append(paths, path)
	}
	return paths, nil
}
