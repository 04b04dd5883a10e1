package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
	"github.com/teamboard/teamboard/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskUpdateCmd(app),
		newTaskMoveCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
		newTaskMineCmd(app),
	)

	return cmd
}

// loadBoard points the store at a project and pulls its tasks.
func loadBoard(app *App, projectID int) error {
	ctx := context.Background()
	app.Store.FetchProject(ctx, projectID)
	if app.Store.CurrentProject() == nil {
		return fmt.Errorf("project %d not found", projectID)
	}
	app.Store.FetchTasks(ctx, projectID)
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			if err := loadBoard(app, projectID); err != nil {
				return err
			}

			tasks := app.Store.Tasks()
			if len(tasks) == 0 {
				fmt.Println("No tasks yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description, priority, due, assignee string

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Create a task in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			if title == "" && app.IsInteractive() {
				title, description, priority, due, err = runTaskForm(title, description, priority, due)
				if err != nil {
					return err
				}
			}

			if err := loadBoard(app, projectID); err != nil {
				return err
			}

			form := domain.TaskForm{Title: &title}
			if description != "" {
				form.Description = &description
			}
			if priority != "" {
				p := domain.TaskPriority(priority)
				form.Priority = &p
			}
			if due != "" {
				form.DueDate = &due
			}
			if assignee != "" {
				form.AssignedTo = &assignee
			}

			created, err := app.Store.CreateTask(context.Background(), projectID, form)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s [#%d]\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee user id")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, description, status, priority, due, assignee string

	cmd := &cobra.Command{
		Use:   "update TASK",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			var form domain.TaskForm
			if cmd.Flags().Changed("title") {
				form.Title = &title
			}
			if cmd.Flags().Changed("description") {
				form.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.TaskStatus(status)
				form.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				p := domain.TaskPriority(priority)
				form.Priority = &p
			}
			if cmd.Flags().Changed("due") {
				form.DueDate = &due
			}
			if cmd.Flags().Changed("assignee") {
				form.AssignedTo = &assignee
			}

			if err := app.Store.UpdateTask(context.Background(), taskID, form); err != nil {
				return err
			}

			fmt.Printf("Updated task #%d\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo, in_progress, done)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee user id")

	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move PROJECT TASK STATUS",
		Short: "Move a task to another board column",
		Long: "Move a task to another board column (todo, in_progress, done).\n" +
			"Moving a task onto its current column is a no-op.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			taskID, err := parseID(args[1], "task")
			if err != nil {
				return err
			}

			if err := loadBoard(app, projectID); err != nil {
				return err
			}

			target := domain.TaskStatus(args[2])
			if err := app.Store.MoveTask(context.Background(), taskID, target); err != nil {
				return err
			}

			fmt.Printf("Moved task #%d to %s\n", taskID, target)
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done PROJECT TASK",
		Short: "Shortcut: move a task to the done column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			taskID, err := parseID(args[1], "task")
			if err != nil {
				return err
			}

			if err := loadBoard(app, projectID); err != nil {
				return err
			}
			if err := app.Store.MoveTask(context.Background(), taskID, domain.TaskDone); err != nil {
				return err
			}

			fmt.Printf("Task #%d done\n", taskID)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove TASK",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Delete task #%d?", taskID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Store.DeleteTask(context.Background(), taskID); err != nil {
				return err
			}

			fmt.Printf("Deleted task #%d\n", taskID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newTaskMineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List tasks assigned to you across projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.API.MyTasks(context.Background())
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("Nothing assigned to you.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}
}
