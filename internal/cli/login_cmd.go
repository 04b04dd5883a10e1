package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a session token",
		Long: "Sign in with a session token issued by the auth provider.\n" +
			"The token is verified against the server and persisted for later runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				if !app.IsInteractive() {
					return fmt.Errorf("no terminal available; pass the token with --token")
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Session token").
						EchoMode(huh.EchoModePassword).
						Value(&token),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			user, err := app.Session.SignIn(context.Background(), token)
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s\n", formatter.StyleBold.Render(user.DisplayName()))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Session token (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.SignOut(context.Background()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := app.Session.Current()
			if user == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s <%s>\n", user.DisplayName(), user.Email)
			return nil
		},
	}
}
