package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgefinder/internal/config"
	"github.com/abhisek/edgefinder/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent study events",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		since, _ := cmd.Flags().GetDuration("since")

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := store.QueryOpts{Limit: limit, Kind: kind}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := st.EventRepo().QueryStudyEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printHistory(cmd.OutOrStdout(), events)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	historyCmd.Flags().String("kind", "", "Only show events of this kind (setup_viewed, lesson_completed, ...)")
	historyCmd.Flags().Duration("since", 0, "Only show events newer than this (e.g. 24h)")
}

func printHistory(w io.Writer, events []store.StudyEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No study events recorded.")
		return
	}
	fmt.Fprintf(w, "%6s  %-19s  %-20s  %-20s  %s\n", "Seq", "Time", "Kind", "Subject", "Session")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, e := range events {
		session := e.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Fprintf(w, "%6d  %-19s  %-20s  %-20s  %s\n",
			e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Kind, e.SubjectID, session)
	}
}
