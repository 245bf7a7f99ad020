package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/todo-cli/internal/observability"
)

var (
	historySinceFlag string
	historyUntilFlag string
	historyTypeFlag  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded task mutations",
	Long: `Show the mutation events recorded in the event log next to the
backing file.

Filter with --since and --until (e.g. 24h, 7d) and --type (task.added,
task.edited, task.removed, task.toggled).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			return fmt.Errorf("event log not available")
		}

		filter := observability.EventFilter{Type: historyTypeFlag}
		if historySinceFlag != "" {
			since, err := parseSince(historySinceFlag)
			if err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
			filter.Since = &since
		}
		if historyUntilFlag != "" {
			until, err := parseSince(historyUntilFlag)
			if err != nil {
				return fmt.Errorf("parsing --until: %w", err)
			}
			filter.Until = &until
		}

		events, err := EventLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading event log: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}

		for _, e := range events {
			fmt.Printf("%s  %-13s %s\n", e.Time.Format(time.RFC3339), e.Type, formatEventData(e.Data))
		}
		return nil
	},
}

// formatEventData renders the event payload as stable key=value pairs.
func formatEventData(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(parts, " ")
}

// parseSince parses a human-friendly duration string like "7d" or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	num, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}

func init() {
	historyCmd.Flags().StringVar(&historySinceFlag, "since", "", "Only show events newer than this (e.g. 24h, 7d)")
	historyCmd.Flags().StringVar(&historyUntilFlag, "until", "", "Only show events older than this (e.g. 24h, 7d)")
	historyCmd.Flags().StringVar(&historyTypeFlag, "type", "", "Only show events of this type (e.g. task.added)")

	rootCmd.AddCommand(historyCmd)
}
