package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/app"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/logging"
)

// runApp loads config and catalog, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.ForTUI(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	c, err := loadCatalog(cfg, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	opts := app.Options{Catalog: c, Config: cfg, Logger: logger}
	if !cfg.NoStore {
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		journal := st.Journal(uuid.NewString())
		if err := journal.Start(ctx); err != nil {
			logger.Warn("record session start", "err", err)
		}
		completed, err := journal.Completed(ctx)
		if err != nil {
			logger.Warn("restore lesson progress", "err", err)
		}
		opts.Journal = journal
		opts.Events = st.EventRepo()
		opts.Completed = completed
		logger.Info("session started", "session", journal.SessionID(), "completed", len(completed))
	}

	return app.Run(opts)
}
