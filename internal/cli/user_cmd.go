package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up users",
	}

	cmd.AddCommand(newUserSearchCmd(app), newUserInspectCmd(app))

	return cmd
}

func newUserSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search EMAIL",
		Short: "Search users by email prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.API.SearchUsers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatUserList(users))
			return nil
		},
	}
}

func newUserInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.API.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Dim(user.ID))
			fmt.Printf("Name:  %s\n", user.DisplayName())
			fmt.Printf("Email: %s\n", user.Email)
			return nil
		},
	}
}
