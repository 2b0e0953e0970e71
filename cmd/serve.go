package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logging"
)

func newServeCmd(version string) *cobra.Command {
	var (
		host string
		port int32
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web interface",
		Long: `Starts the bookshelf web page: the book form above the table, with
HTMX redrawing the table after every change.`,
		Example: `  # Start server on the configured port (PORT, default 8188)
  bookshelf serve

  # Start server on a custom address
  bookshelf serve --host 127.0.0.1 --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if cmd.Flags().Changed("host") {
				cfg.HTTP.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.HTTP.Port = port
			}

			logger := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			return entrypoint.Run(cmd.Context(), cfg, version, logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Address to bind (overrides HOST)")
	cmd.Flags().Int32VarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")

	return cmd
}
