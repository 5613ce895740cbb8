package cmd

import (
	"fmt"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edgefinder",
	Short: "Explore high-probability SPX intraday setups",
	Long:  "EdgeFinder is a terminal reference for SPX trading setups, with entry and exit rules, animated pattern diagrams and short lessons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDGEFINDER_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog reads the catalog override directory, or the embedded
// catalog, and logs consistency issues.
func loadCatalog(cfg config.Config, log *clog.Logger) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if cfg.CatalogDir != "" {
		c, err = catalog.LoadDir(cfg.CatalogDir)
	} else {
		c, err = catalog.Default()
	}
	if err != nil {
		return nil, err
	}
	for _, issue := range catalog.Validate(c) {
		log.Warn("catalog issue", "kind", issue.Kind, "id", issue.ID, "msg", issue.Message)
	}
	return c, nil
}
