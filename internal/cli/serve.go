package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linguist/pkg/server"
)

// serveCommand runs the HTTP lookup API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP",
		Long: `Serve the lookup API over HTTP.

Routes:
  GET /healthz
  GET /v1/languages[?type=T]
  GET /v1/languages/{name}
  GET /v1/extensions/{ext}
  GET /v1/modes/{mode}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idx, err := c.index(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.config.Server.Addr
			}
			logger := loggerFromContext(ctx)
			return server.Run(ctx, addr, server.New(idx, logger), logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
