package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/teamboard/teamboard/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// ProjectStatusLabel returns a colored label for a project status.
func ProjectStatusLabel(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActive:
		return StyleGreen.Render("active")
	case domain.ProjectCompleted:
		return StyleBlue.Render("completed")
	case domain.ProjectOnHold:
		return StyleYellow.Render("on-hold")
	default:
		return StyleDim.Render(string(s))
	}
}

// TaskStatusLabel returns a colored label for a task status.
func TaskStatusLabel(s domain.TaskStatus) string {
	switch s {
	case domain.TaskTodo:
		return StyleDim.Render("todo")
	case domain.TaskInProgress:
		return StyleYellow.Render("in progress")
	case domain.TaskDone:
		return StyleGreen.Render("done")
	default:
		return StyleDim.Render(string(s))
	}
}

// PriorityLabel returns a colored label for a task priority.
func PriorityLabel(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("high")
	case domain.PriorityMedium:
		return StyleYellow.Render("medium")
	case domain.PriorityLow:
		return StyleBlue.Render("low")
	default:
		return StyleDim.Render("--")
	}
}

// RoleLabel returns a colored label for a member role.
func RoleLabel(r domain.MemberRole) string {
	switch r {
	case domain.RoleOwner:
		return StylePurple.Render("owner")
	case domain.RoleAdmin:
		return StyleBlue.Render("admin")
	case domain.RoleMember:
		return StyleFg.Render("member")
	default:
		return StyleDim.Render(string(r))
	}
}
