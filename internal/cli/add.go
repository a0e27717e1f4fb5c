package cli

import (
	"fmt"
	"os"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		DueDate     string
		Priority    string
		Category    string
		From        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Add a new task",
		GroupID: groupTask,
		Args:    cobra.MaximumNArgs(1),
		Long: `Add a new task to the task file.

Examples:
  # Add a simple task
  taskie add "Buy groceries"

  # Add a task with details
  taskie add "File taxes" --due 2026-04-15 --priority high --category finance

  # Add tasks from a Markdown draft file (multiple drafts supported)
  taskie add --from drafts.md

  # Preview drafts without creating
  taskie add --from drafts.md --dry-run

Draft file format for --from:
  ---
  title: File taxes
  due: 2026-04-15
  priority: high
  category: finance
  ---
  Description here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From != "" {
				return addFromFile(cmd, c, opts.From, opts.DryRun)
			}
			if len(args) == 0 {
				return fmt.Errorf("requires a title argument (or --from)")
			}

			// Pre-validate user input before touching the store
			if opts.DueDate != "" && !domain.ValidDate(opts.DueDate) {
				return fmt.Errorf("invalid due date %q, expected format: YYYY-MM-DD", opts.DueDate)
			}
			if !domain.ValidPriority(opts.Priority) {
				return fmt.Errorf("invalid priority %q, must be one of: low, medium, high", opts.Priority)
			}

			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			task, err := m.Add(args[0], manager.AddParams{
				Description: opts.Description,
				DueDate:     opts.DueDate,
				Priority:    opts.Priority,
				Category:    opts.Category,
			})
			if err != nil {
				return err
			}
			if err := saveStore(c, m); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Task added: %s\n", domain.FormatTask(task.Record(), domain.DisplayOptions{}))
			_, _ = fmt.Fprintf(w, "Task ID: %s\n", task.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "Task description")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium or high (default medium)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category for grouping")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a Markdown draft file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview drafts without creating (requires --from)")

	return cmd
}

// addFromFile creates tasks from a Markdown draft file.
func addFromFile(cmd *cobra.Command, c *app.Container, path string, dryRun bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read draft file: %w", err)
	}
	drafts, err := ParseDrafts(string(content))
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		return fmt.Errorf("no task drafts found in %s", path)
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintf(w, "Would create %d task(s):\n", len(drafts))
		for _, d := range drafts {
			_, _ = fmt.Fprintf(w, "  - %s\n", d.Title)
		}
		return nil
	}

	m, err := c.OpenManager()
	if err != nil {
		return err
	}
	for i, d := range drafts {
		if _, err := m.Add(d.Title, manager.AddParams{
			Description: d.Description,
			DueDate:     d.Due,
			Priority:    d.Priority,
			Category:    d.Category,
		}); err != nil {
			return fmt.Errorf("draft %d: %w", i+1, err)
		}
	}
	if err := saveStore(c, m); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Created %d task(s)\n", len(drafts))
	return nil
}
