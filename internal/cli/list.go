package cli

import (
	"fmt"
	"time"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All       bool
		Completed bool
		Pending   bool
		Cancelled bool
		Overdue   bool
		Priority  string
		Category  string
		DueToday  bool
		DueBefore string
		DueAfter  string
		Search    string
		SortBy    string
		Reverse   bool
		ShowID    bool
		ShowDesc  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		GroupID: groupTask,
		Long: `List tasks matching the given filters.

By default only pending tasks are shown; use --all to include completed
and cancelled tasks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}

			// Status filter: default to pending unless overridden
			var tasks []*domain.Task
			switch {
			case opts.Completed:
				tasks = m.Completed()
			case opts.Pending:
				tasks = m.Pending()
			case opts.Cancelled:
				tasks = m.Cancelled()
			case opts.All:
				tasks = m.All()
			default:
				tasks = m.Pending()
			}

			keep := func(subset []*domain.Task) {
				in := make(map[string]bool, len(subset))
				for _, t := range subset {
					in[t.ID()] = true
				}
				filtered := tasks[:0:0]
				for _, t := range tasks {
					if in[t.ID()] {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			if opts.Priority != "" {
				subset, err := m.ByPriorityName(opts.Priority)
				if err != nil {
					return err
				}
				keep(subset)
			}
			if opts.Category != "" {
				keep(m.ByCategory(opts.Category))
			}
			if opts.DueToday {
				subset, err := m.DueOn(time.Now().Format(domain.DateLayout))
				if err != nil {
					return err
				}
				keep(subset)
			}
			if opts.DueBefore != "" {
				subset, err := m.DueBefore(opts.DueBefore)
				if err != nil {
					return err
				}
				keep(subset)
			}
			if opts.DueAfter != "" {
				subset, err := m.DueAfter(opts.DueAfter)
				if err != nil {
					return err
				}
				keep(subset)
			}
			if opts.Overdue {
				keep(m.Overdue())
			}
			if opts.Search != "" {
				keep(m.Search(opts.Search))
			}

			// Sort the full collection, then keep the filtered subset
			// in sorted order.
			sorted, err := m.Sort(opts.SortBy, opts.Reverse)
			if err != nil {
				return err
			}
			in := make(map[string]bool, len(tasks))
			for _, t := range tasks {
				in[t.ID()] = true
			}
			records := make([]domain.Record, 0, len(tasks))
			for _, t := range sorted {
				if in[t.ID()] {
					records = append(records, t.Record())
				}
			}

			w := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks found matching the criteria.")
				return nil
			}
			_, _ = fmt.Fprintln(w, domain.FormatTaskList(records, domain.DisplayOptions{
				ShowID:   opts.ShowID,
				ShowDesc: opts.ShowDesc,
			}))
			_, _ = fmt.Fprintf(w, "\nTotal: %d task(s)\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Include completed and cancelled tasks")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&opts.Cancelled, "cancelled", false, "Show only cancelled tasks")
	cmd.Flags().BoolVar(&opts.Overdue, "overdue", false, "Show only overdue tasks")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category")
	cmd.Flags().BoolVar(&opts.DueToday, "due-today", false, "Show tasks due today")
	cmd.Flags().StringVar(&opts.DueBefore, "due-before", "", "Show tasks due before a date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.DueAfter, "due-after", "", "Show tasks due after a date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search in title and description")
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", manager.SortByDueDate, "Sort key: due_date, priority, title, created_at or category")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Reverse the sort order")
	cmd.Flags().BoolVar(&opts.ShowID, "show-id", false, "Show task IDs")
	cmd.Flags().BoolVar(&opts.ShowDesc, "show-description", false, "Show task descriptions")

	return cmd
}
