package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
	"github.com/teamboard/teamboard/internal/domain"
)

// parseID converts a numeric id argument.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectAddCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Store.FetchProjects(context.Background())
			app.Store.SetSearchQuery(search)

			projects := app.Store.FilteredProjects()
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name or description (client-side)")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			app.Store.FetchProject(context.Background(), id)
			p := app.Store.CurrentProject()
			if p == nil {
				return fmt.Errorf("project %d not found", id)
			}

			fmt.Printf("%s\n", formatter.FormatProjectDetail(p))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, start, end, status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.IsInteractive() {
				var err error
				name, description, start, end, status, err = runProjectForm(name, description, start, end, status)
				if err != nil {
					return err
				}
			}

			form := domain.ProjectForm{Name: &name}
			if description != "" {
				form.Description = &description
			}
			if start != "" {
				form.StartDate = &start
			}
			if end != "" {
				form.EndDate = &end
			}
			if status != "" {
				s := domain.ProjectStatus(status)
				form.Status = &s
			}

			created, err := app.Store.CreateProject(context.Background(), form)
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s [#%d]\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description (markdown)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (active, completed, on-hold)")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, description, start, end, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update project fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			var form domain.ProjectForm
			if cmd.Flags().Changed("name") {
				form.Name = &name
			}
			if cmd.Flags().Changed("description") {
				form.Description = &description
			}
			if cmd.Flags().Changed("start") {
				form.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				form.EndDate = &end
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProjectStatus(status)
				form.Status = &s
			}

			if err := app.Store.UpdateProject(context.Background(), id, form); err != nil {
				return err
			}

			fmt.Printf("Updated project #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status (active, completed, on-hold)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Delete project #%d and all its tasks, members and files?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Store.DeleteProject(context.Background(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted project #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
