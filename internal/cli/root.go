package cli

import (
	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/session"
	"github.com/teamboard/teamboard/internal/store"
)

// App holds the stores and the API client the CLI commands work against.
// Views go through the Store for project/task state; members, files and
// user search are thin pass-throughs straight to the API client.
type App struct {
	API     *api.Client
	Store   *store.Store
	Session *session.Store

	// IsInteractive reports whether stdin is a terminal. Interactive-only
	// surfaces (board, forms) refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "teamboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teamboard",
		Short:         "Project boards, tasks and teams from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newMemberCmd(app),
		newFileCmd(app),
		newUserCmd(app),
		newStatsCmd(app),
		newBoardCmd(app),
	)

	return root
}
