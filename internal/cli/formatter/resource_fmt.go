package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teamboard/teamboard/internal/domain"
)

// Truncate shortens s to max visible runes, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatProjectList renders the project table.
func FormatProjectList(projects []domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "START", "END"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			Truncate(p.Name, 40),
			ProjectStatusLabel(p.Status),
			orDash(p.StartDate),
			orDash(p.EndDate),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectDetail renders a single project inspect view.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(p.Name), ProjectStatusLabel(p.Status))
	fmt.Fprintf(&b, "%s #%d\n", Dim("id"), p.ID)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if p.StartDate != "" || p.EndDate != "" {
		fmt.Fprintf(&b, "\n%s %s → %s\n", Dim("dates"), orDash(p.StartDate), orDash(p.EndDate))
	}
	if len(p.Tasks) > 0 {
		stats := domain.ComputeStats(p.Tasks)
		fmt.Fprintf(&b, "%s %d tasks, %d%% complete\n", Dim("tasks"), stats.Total, stats.CompletionRate)
	}
	if len(p.Members) > 0 {
		fmt.Fprintf(&b, "%s %d\n", Dim("members"), len(p.Members))
	}
	if len(p.Files) > 0 {
		fmt.Fprintf(&b, "%s %d\n", Dim("files"), len(p.Files))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTaskList renders the task table.
func FormatTaskList(tasks []domain.Task) string {
	headers := []string{"ID", "TITLE", "STATUS", "PRIORITY", "DUE", "ASSIGNEE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		assignee := Dim("--")
		if t.Assignee != nil {
			assignee = t.Assignee.DisplayName()
		} else if t.AssignedTo != "" {
			assignee = Truncate(t.AssignedTo, 8)
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			Truncate(t.Title, 40),
			TaskStatusLabel(t.Status),
			PriorityLabel(t.Priority),
			orDash(t.DueDate),
			assignee,
		})
	}
	return RenderTable(headers, rows)
}

// FormatMemberList renders the member table.
func FormatMemberList(members []domain.ProjectMember) string {
	headers := []string{"ID", "NAME", "ROLE", "JOINED"}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			Truncate(m.DisplayName(), 36),
			RoleLabel(m.Role),
			m.JoinedAt.Format("2006-01-02"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatFileList renders the file table.
func FormatFileList(files []domain.FileRecord) string {
	headers := []string{"ID", "FILENAME", "SIZE", "TYPE", "UPLOADED"}
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{
			strconv.Itoa(f.ID),
			Truncate(f.Filename, 40),
			f.HumanSize(),
			orDash(f.FileType),
			f.UploadedAt.Format("2006-01-02"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatUserList renders the user search result table.
func FormatUserList(users []domain.User) string {
	headers := []string{"ID", "EMAIL", "NAME"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		name := u.FullName
		if name == "" {
			name = Dim("--")
		}
		rows = append(rows, []string{Truncate(u.ID, 12), u.Email, name})
	}
	return RenderTable(headers, rows)
}

// FormatStats renders the aggregate statistics panel for a project.
func FormatStats(name string, stats domain.TaskStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", StyleBold.Render(name))
	fmt.Fprintf(&b, "%s  %d\n", Dim("total tasks     "), stats.Total)
	fmt.Fprintf(&b, "%s  %s\n", Dim("todo            "), StyleDim.Render(strconv.Itoa(stats.Todo)))
	fmt.Fprintf(&b, "%s  %s\n", Dim("in progress     "), StyleYellow.Render(strconv.Itoa(stats.InProgress)))
	fmt.Fprintf(&b, "%s  %s\n", Dim("done            "), StyleGreen.Render(strconv.Itoa(stats.Done)))
	fmt.Fprintf(&b, "%s  %s\n", Dim("completion rate "), StyleBold.Render(fmt.Sprintf("%d%%", stats.CompletionRate)))
	fmt.Fprintf(&b, "\n%s high %d · medium %d · low %d",
		Dim("priority"), stats.HighPriority, stats.MediumPriority, stats.LowPriority)
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
