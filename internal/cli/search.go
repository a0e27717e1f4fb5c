package cli

import (
	"fmt"

	"github.com/ktsujichan/taskie/internal/app"
	"github.com/ktsujichan/taskie/internal/domain"
	"github.com/spf13/cobra"
)

// newSearchCommand creates the search command.
func newSearchCommand(c *app.Container) *cobra.Command {
	var showID bool

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   "Search tasks by title or description",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.OpenManager()
			if err != nil {
				return err
			}

			matches := m.Search(args[0])
			records := make([]domain.Record, 0, len(matches))
			for _, t := range matches {
				records = append(records, t.Record())
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, domain.FormatTaskList(records, domain.DisplayOptions{ShowID: showID}))
			if len(records) > 0 {
				_, _ = fmt.Fprintf(w, "\nFound: %d task(s)\n", len(records))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showID, "show-id", false, "Show task IDs")

	return cmd
}
