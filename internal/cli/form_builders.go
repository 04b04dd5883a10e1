package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/teamboard/teamboard/internal/domain"
)

// validateOptionalDate accepts an empty string or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return domain.ValidateDate(s)
}

// dateInput returns a huh.Input for an optional date field.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// runProjectForm collects project fields interactively. Passed-in values
// become the form defaults.
func runProjectForm(name, description, start, end, status string) (string, string, string, string, string, error) {
	if status == "" {
		status = string(domain.ProjectActive)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional, markdown)").
				Value(&description),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("active", string(domain.ProjectActive)),
					huh.NewOption("completed", string(domain.ProjectCompleted)),
					huh.NewOption("on-hold", string(domain.ProjectOnHold)),
				).
				Value(&status),
			dateInput("Start date (optional)", &start),
			dateInput("End date (optional)", &end),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", "", "", "", err
	}
	return name, description, start, end, status, nil
}

// runTaskForm collects task fields interactively.
func runTaskForm(title, description, priority, due string) (string, string, string, string, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Value(&title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Value(&description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("none", ""),
					huh.NewOption("low", string(domain.PriorityLow)),
					huh.NewOption("medium", string(domain.PriorityMedium)),
					huh.NewOption("high", string(domain.PriorityHigh)),
				).
				Value(&priority),
			dateInput("Due date (optional)", &due),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", "", "", err
	}
	return title, description, priority, due, nil
}

// confirm asks a yes/no question; non-interactive runs refuse rather than
// guessing.
func confirm(app *App, prompt string) (bool, error) {
	if !app.IsInteractive() {
		return false, fmt.Errorf("refusing destructive operation without a terminal (use --yes)")
	}
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(prompt).Value(&ok),
	)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
