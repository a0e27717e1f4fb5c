package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	return newMarkCommand(c, "complete", "Mark a task as completed", "complete",
		func(m *manager.Manager, id string) bool { return m.MarkCompleted(id) })
}

// newPendingCommand creates the pending command.
func newPendingCommand(c *app.Container) *cobra.Command {
	return newMarkCommand(c, "pending", "Mark a task as pending", "pending",
		func(m *manager.Manager, id string) bool { return m.MarkPending(id) })
}

// newCancelCommand creates the cancel command.
func newCancelCommand(c *app.Container) *cobra.Command {
	return newMarkCommand(c, "cancel", "Mark a task as cancelled", "cancelled",
		func(m *manager.Manager, id string) bool { return m.MarkCancelled(id) })
}

// newMarkCommand builds a status transition command. The transitions are
// unconditional overwrites, so these never fail on state, only on a
// missing task.
func newMarkCommand(c *app.Container, use, short, display string, mark func(*manager.Manager, string) bool) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <id>",
		Short:   short,
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
			mark(m, task.ID())
			if err := saveStore(c, m); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task marked as %s: %s\n", display,
				domain.FormatTask(task.Record(), domain.DisplayOptions{}))
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task",
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
			if !force {
				_, _ = fmt.Fprintf(w, "Delete task: %s? (y/N) ",
					domain.FormatTask(task.Record(), domain.DisplayOptions{}))
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					_, _ = fmt.Fprintln(w, "Delete operation canceled.")
					return nil
				}
			}

			m.Delete(task.ID())
			if err := saveStore(c, m); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Task deleted: %s\n", task.Title())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
