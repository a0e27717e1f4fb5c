package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/manager"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "export <csv-file>",
		Short:   "Export tasks to a CSV file",
		GroupID: groupData,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			if !m.ExportCSV(args[0]) {
				return fmt.Errorf("failed to export tasks to CSV file: %s", args[0])
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Tasks exported to CSV file: %s\n", args[0])
			_, _ = fmt.Fprintf(w, "Exported %d task(s)\n", m.Len())
			return nil
		},
	}
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:     "import <csv-file>",
		Short:   "Import tasks from a CSV file",
		GroupID: groupData,
		Args:    cobra.ExactArgs(1),
		Long: `Import tasks from a CSV file, replacing the current task list.

With --merge, imported tasks are appended instead, skipping any whose id
is already present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if merge {
				// Import into a scratch manager, then merge by id
				// through the JSON path.
				scratch := manager.New(manager.WithLogger(c.Logger))
				if !scratch.ImportCSV(args[0]) {
					return fmt.Errorf("failed to import tasks from CSV file: %s", args[0])
				}
				tmp := filepath.Join(os.TempDir(), fmt.Sprintf("taskie-import-%d.json", os.Getpid()))
				if !scratch.SaveFile(tmp) {
					return fmt.Errorf("failed to stage imported tasks")
				}
				defer func() { _ = os.Remove(tmp) }()

				added, err := m.MergeFile(tmp)
				if err != nil {
					return err
				}
				if err := saveStore(c, m); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Imported and merged %d task(s) from CSV file: %s\n", added, args[0])
				_, _ = fmt.Fprintf(w, "Total tasks: %d\n", m.Len())
				return nil
			}

			if !m.ImportCSV(args[0]) {
				return fmt.Errorf("failed to import tasks from CSV file: %s", args[0])
			}
			if err := saveStore(c, m); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "Imported %d task(s) from CSV file: %s\n", m.Len(), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Merge with existing tasks instead of replacing")

	return cmd
}

// newMergeCommand creates the merge command.
func newMergeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "merge <json-file>",
		Short:   "Merge tasks from another task file",
		GroupID: groupData,
		Args:    cobra.ExactArgs(1),
		Long: `Merge tasks from another JSON task file into the current list.
Tasks whose id is already present are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}
			added, err := m.MergeFile(args[0])
			if err != nil {
				return err
			}
			if err := saveStore(c, m); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Merged %d task(s) from file: %s\n", added, args[0])
			_, _ = fmt.Fprintf(w, "Total tasks: %d\n", m.Len())
			return nil
		},
	}
}
