package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/form"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/table"
	"github.com/mrlokans/bookshelf/internal/tui"
)

func newTUICmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the book list in the terminal",
		Long: `Draws the book form and table in the terminal.

Logs go to TUI_LOG_PATH since the screen belongs to the interface.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()

			logger := logging.Discard()
			if cfg.Log.TUIPath != "" {
				logFile, err := os.OpenFile(cfg.Log.TUIPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer logFile.Close()
				logger = logging.New(cfg.Log.Level, logFile)
			}
			// The terminal belongs to the UI; nothing may log to stderr.
			slog.SetDefault(logger)
			logger.Info("Starting bookshelf terminal UI", "version", version)

			c := entrypoint.NewCatalog(cfg)

			activityLog, err := entrypoint.OpenActivityLog(cmd.Context(), cfg, entities.SurfaceTerminal, logger)
			if err != nil {
				return err
			}
			if activityLog != nil {
				activityLog.Attach(c)
				defer activityLog.Close()
			}

			surface := table.NewTextSurface()
			renderer := table.NewRenderer(c, surface)
			return tui.Run(cmd.Context(), renderer, surface, form.NewController(renderer), logger)
		},
	}
}
