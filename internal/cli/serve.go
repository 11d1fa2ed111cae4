package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/catspeak-dev/catspeak/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve encode and decode over HTTP",
		Long: `Starts an HTTP server with these routes:

  GET  /health            status and version
  GET  /alphabet?base=N   tokens and widths for a base
  POST /encode            {"text": "...", "base": 4, "mode": "text", "width": 0}
  POST /decode            same body; text holds the token stream

Fields left out of a request fall back to the configured base and mode.`,
		Example: `  catspeak serve
  catspeak serve --listen :9000 --base 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printSuccess(cmd.OutOrStdout(), "Serving on %s", info(st.cfg.Server.ListenAddr))
			return server.New(st.cfg, Version, st.logger).Start(ctx)
		},
	}

	cmd.Flags().String("listen", config.DefaultListenAddr, "Address to listen on")
	cmd.Flags().Int("max-input-bytes", config.DefaultMaxInputBytes, "Largest accepted text field in bytes")

	return cmd
}
