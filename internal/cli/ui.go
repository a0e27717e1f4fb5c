package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/tui"
	"github.com/spf13/cobra"
)

// newUICommand creates the ui command launching the interactive browser.
func newUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Short:   "Browse tasks interactively",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(m), tea.WithAltScreen())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run ui: %w", err)
			}

			if model, ok := final.(tui.Model); ok && model.Dirty() {
				return saveStore(c, m)
			}
			return nil
		},
	}
}
