package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flierkit/pkg/api"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		fallback bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET  /healthz
  POST /api/layout                  compose one request
  POST /api/layout/batch            compose several requests
  POST /api/analyze                 score a background
  GET  /api/zones/{tier}            safe zones for a tier
  POST /api/flier/generate          generate and compose background options
  GET  /api/translations/{category} translation table

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := api.New(runner, c.Logger, api.Options{Fallback: fallback})
			printSuccess("Serving on %s", StyleLink.Render(listenURL(addr)))
			printDetail("cache: %s · backend: %s", cacheBackendName(cfg.Cache.Backend, noCache), cfg.BackendURL)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&fallback, "fallback", false, "fall back to rule-based styles when generation fails")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func listenURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

func cacheBackendName(name string, noCache bool) string {
	switch {
	case noCache:
		return "none"
	case name == "":
		return "file"
	}
	return name
}
