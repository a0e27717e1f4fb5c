package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/spf13/cobra"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show task statistics",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			stats := m.Stats()

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "Task Statistics")
			_, _ = fmt.Fprintln(w, "===============")
			_, _ = fmt.Fprintf(w, "Total tasks: %d\n", stats.Total)
			_, _ = fmt.Fprintf(w, "Completed: %d (%s%%)\n", stats.Completed, formatRate(stats.CompletionRate))
			_, _ = fmt.Fprintf(w, "Pending: %d\n", stats.Pending)
			_, _ = fmt.Fprintf(w, "Cancelled: %d\n", stats.Cancelled)
			_, _ = fmt.Fprintf(w, "Overdue: %d\n", stats.Overdue)

			if len(stats.Categories) > 0 {
				_, _ = fmt.Fprintln(w, "\nCategories")
				_, _ = fmt.Fprintln(w, "----------")
				names := make([]string, 0, len(stats.Categories))
				for name := range stats.Categories {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					_, _ = fmt.Fprintf(w, "%s: %d task(s)\n", name, stats.Categories[name])
				}
			}

			_, _ = fmt.Fprintln(w, "\nPriorities")
			_, _ = fmt.Fprintln(w, "----------")
			_, _ = fmt.Fprintf(w, "High: %d task(s)\n", stats.Priorities["high"])
			_, _ = fmt.Fprintf(w, "Medium: %d task(s)\n", stats.Priorities["medium"])
			_, _ = fmt.Fprintf(w, "Low: %d task(s)\n", stats.Priorities["low"])
			return nil
		},
	}
}

// formatRate renders a completion rate without a trailing ".0".
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
