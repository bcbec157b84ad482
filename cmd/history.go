package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wannabe/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent navigation activity from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().Recent(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-19s  %-8s  %-12s  %-16s  %-16s  %-6s  %s\n",
			"Time", "Session", "Intent", "From", "To", "Role", "Lesson")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, ev := range events {
			lesson := ev.LessonKey
			if lesson != "" {
				lesson = fmt.Sprintf("%s #%d", lesson, ev.Cursor+1)
			}
			fmt.Fprintf(out, "%-19s  %-8s  %-12s  %-16s  %-16s  %-6s  %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"), shortID(ev.SessionID),
				ev.Intent, ev.From, ev.To, ev.Role, lesson)
		}
		fmt.Fprintf(out, "\n%d events\n", len(events))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 = all)")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
