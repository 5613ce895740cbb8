package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/logging"
	"github.com/abhisek/edgefinder/internal/progress"
	"github.com/abhisek/edgefinder/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson progress and the most studied setups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg, logging.ForCLI(cfg.LogLevel))
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("latest snapshot: %w", err)
		}
		var completed []string
		if snap != nil {
			completed = snap.Data.Completed
		}
		views, err := st.EventRepo().SubjectCounts(ctx, store.KindSetupViewed)
		if err != nil {
			return fmt.Errorf("setup views: %w", err)
		}
		kinds, err := st.EventRepo().KindCounts(ctx)
		if err != nil {
			return fmt.Errorf("event counts: %w", err)
		}

		printStats(cmd.OutOrStdout(), c, progress.Restore(completed), views, kinds[store.KindSessionStarted])
		return nil
	},
}

func printStats(w io.Writer, c *catalog.Catalog, done progress.Set, views map[string]int, sessions int) {
	total := len(c.Lessons)
	fmt.Fprintf(w, "Lessons: %d of %d completed (%d%%)\n", done.Len(), total, done.Percentage(total))
	for _, l := range c.Lessons {
		mark := " "
		if done.Has(l.ID) {
			mark = "✓"
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, l.Title)
	}

	fmt.Fprintf(w, "\nSessions: %d\n\n", sessions)
	fmt.Fprintf(w, "%-28s  %6s\n", "Setup", "Views")
	fmt.Fprintln(w, strings.Repeat("─", 36))

	setups := append([]catalog.Setup(nil), c.Setups...)
	sort.SliceStable(setups, func(i, j int) bool {
		return views[setups[i].ID] > views[setups[j].ID]
	})
	for _, s := range setups {
		fmt.Fprintf(w, "%-28s  %6d\n", s.Name, views[s.ID])
	}
}
