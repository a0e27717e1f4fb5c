package cli

import (
	"fmt"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// newUpdateCommand creates the update command.
func newUpdateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		DueDate     string
		Priority    string
		Category    string
	}

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update task fields",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Update fields of an existing task. Only the flags given change;
everything else is left as is.

Use --due none to clear the due date and --category none to clear the
category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("desc") && !flags.Changed("due") &&
				!flags.Changed("priority") && !flags.Changed("category") {
				return fmt.Errorf("no fields specified for update")
			}

			params := manager.UpdateParams{}
			if flags.Changed("title") {
				params.Title = &opts.Title
			}
			if flags.Changed("desc") {
				params.Description = &opts.Description
			}
			if flags.Changed("due") {
				due := opts.DueDate
				if due == "none" {
					due = ""
				} else if !domain.ValidDate(due) {
					return fmt.Errorf("invalid due date %q, expected format: YYYY-MM-DD", due)
				}
				params.DueDate = &due
			}
			if flags.Changed("priority") {
				if !domain.ValidPriority(opts.Priority) {
					return fmt.Errorf("invalid priority %q, must be one of: low, medium, high", opts.Priority)
				}
				params.Priority = &opts.Priority
			}
			if flags.Changed("category") {
				category := opts.Category
				if category == "none" {
					category = ""
				}
				params.Category = &category
			}

			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			task, err := resolveTask(m, args[0])
			if err != nil {
				return err
			}
			updated, err := m.Update(task.ID(), params)
			if err != nil {
				return err
			}
			if err := saveStore(c, m); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task updated: %s\n",
				domain.FormatTask(updated.Record(), domain.DisplayOptions{}))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "New description")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "New due date (YYYY-MM-DD, or 'none' to clear)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&opts.Category, "category", "", "New category (or 'none' to clear)")

	return cmd
}
