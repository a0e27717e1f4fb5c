// Package cli provides the command-line interface for taskie.
package cli

import (
	"fmt"
	"strings"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask = "task"
	groupData = "data"
)

// NewRootCommand creates the root command for taskie.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskie",
		Short: "Personal task tracking CLI",
		Long: `taskie is a CLI for tracking personal tasks: titles, due dates,
priorities, categories and statuses, stored in a plain JSON file.

Tasks can be filtered, sorted and searched, exported to CSV and merged
from other task files.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.StoreOverride, "file", "",
		"Task file path (default from config, or "+c.Config.StorePath+")")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newUpdateCommand(c),
		newCompleteCommand(c),
		newPendingCommand(c),
		newCancelCommand(c),
		newDeleteCommand(c),
		newSearchCommand(c),
		newStatsCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newMergeCommand(c),
		newConfigCommand(c),
		newUICommand(c),
	)

	return root
}

// saveStore persists the manager to the effective store path, turning
// the boolean result into a command error.
func saveStore(c *app.Container, m *manager.Manager) error {
	if !m.SaveFile(c.StorePath()) {
		return fmt.Errorf("failed to save tasks to %s", c.StorePath())
	}
	return nil
}

// resolveTask finds a task by full id or unique id prefix.
func resolveTask(m *manager.Manager, id string) (*domain.Task, error) {
	if task, ok := m.Get(id); ok {
		return task, nil
	}

	var matches []*domain.Task
	for _, t := range m.All() {
		if strings.HasPrefix(t.ID(), id) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	default:
		return nil, fmt.Errorf("ambiguous task id %q matches %d tasks", id, len(matches))
	}
}
