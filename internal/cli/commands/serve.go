package commands

import (
	"github.com/leapstack-labs/leapmath/internal/server"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Addr string // Listen address, overrides server.addr
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Long: `Start an HTTP API for parsing and formatting expressions.

Endpoints:
  POST /api/v1/parse    {"input": "2x+1"} -> {"tree": ..., "text": "2x + 1"}
  POST /api/v1/format   {"input": "2x+1"} -> {"text": "2x + 1"}
  GET  /healthz

The server stops gracefully on interrupt.`,
		Example: `  leapmath serve
  leapmath serve --addr :8080 --mixed-numbers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			addr := c.Cfg.GetServerConfig().Addr
			if cmd.Flags().Changed("addr") {
				addr = opts.Addr
			}

			srv := server.New(server.Config{
				Addr:   addr,
				Logger: c.Logger,
				Parser: c.Parser.Options(),
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (default from server.addr)")

	return cmd
}
