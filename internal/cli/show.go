package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show task details",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			task, err := resolveTask(m, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := task.Record()

			if asJSON {
				content, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(w, string(content))
				return nil
			}

			_, _ = fmt.Fprintf(w, "ID: %s\n", r.ID)
			_, _ = fmt.Fprintf(w, "Title: %s\n", r.Title)
			_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status().Display())
			_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority().Display())
			if r.Category != "" {
				_, _ = fmt.Fprintf(w, "Category: %s\n", r.Category)
			}
			if r.DueDate != nil {
				if task.IsOverdue() {
					_, _ = fmt.Fprintf(w, "Due date: OVERDUE: %s\n", *r.DueDate)
				} else {
					_, _ = fmt.Fprintf(w, "Due date: %s\n", *r.DueDate)
				}
			}
			_, _ = fmt.Fprintf(w, "Created: %s\n", r.CreatedAt)
			if r.Description != "" {
				_, _ = fmt.Fprintf(w, "\nDescription:\n%s\n", r.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the task record as JSON")

	return cmd
}
