package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats PROJECT",
		Short: "Show task counts and completion rate for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			if err := loadBoard(app, projectID); err != nil {
				return err
			}

			name := args[0]
			if p := app.Store.CurrentProject(); p != nil {
				name = p.Name
			}

			fmt.Printf("%s\n", formatter.FormatStats(name, app.Store.Stats()))
			return nil
		},
	}
}
