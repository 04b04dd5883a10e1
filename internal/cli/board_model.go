package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/teamboard/teamboard/internal/cli/formatter"
	"github.com/teamboard/teamboard/internal/domain"
)

// boardLoadedMsg signals that the project and its tasks have been pulled
// into the store.
type boardLoadedMsg struct {
	err error
}

// taskMovedMsg signals the outcome of a column move. On success the store
// has already refetched the board; on failure it is untouched.
type taskMovedMsg struct {
	err error
}

const colWidth = 28

type boardKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Reload    key.Binding
	Quit      key.Binding
}

var boardKeys = boardKeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "column")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "task")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	MoveLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H/L", "move task")),
	MoveRight: key.NewBinding(key.WithKeys("L", "shift+right")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

var (
	colStyle       = lipgloss.NewStyle().Width(colWidth).Padding(0, 1)
	colActiveStyle = colStyle.Border(lipgloss.RoundedBorder(), true).BorderForeground(formatter.ColorGreen)
	colIdleStyle   = colStyle.Border(lipgloss.RoundedBorder(), true).BorderForeground(formatter.ColorDim)
)

// boardModel renders a project's tasks as one column per status and moves
// tasks between columns through the store.
type boardModel struct {
	app       *App
	projectID int

	// col indexes domain.AllTaskStatuses; cursor indexes within the column.
	col    int
	cursor int

	loading  bool
	spin     spinner.Model
	errText  string
	quitting bool
}

func newBoardModel(app *App, projectID int) boardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleDim
	return boardModel{
		app:       app,
		projectID: projectID,
		loading:   true,
		spin:      s,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.spin.Tick)
}

func (m boardModel) loadBoard() tea.Cmd {
	app, projectID := m.app, m.projectID
	return func() tea.Msg {
		ctx := context.Background()
		app.Store.FetchProject(ctx, projectID)
		if app.Store.CurrentProject() == nil {
			return boardLoadedMsg{err: fmt.Errorf("project %d not found", projectID)}
		}
		app.Store.FetchTasks(ctx, projectID)
		return boardLoadedMsg{}
	}
}

// column returns the tasks in the given board column, in store order.
func (m boardModel) column(status domain.TaskStatus) []domain.Task {
	var out []domain.Task
	for _, t := range m.app.Store.Tasks() {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// selected returns the task under the cursor, or nil for an empty column.
func (m boardModel) selected() *domain.Task {
	tasks := m.column(domain.AllTaskStatuses[m.col])
	if m.cursor >= len(tasks) {
		return nil
	}
	return &tasks[m.cursor]
}

func (m boardModel) moveSelected(dir int) (tea.Model, tea.Cmd) {
	task := m.selected()
	if task == nil {
		return m, nil
	}
	target := m.col + dir
	if target < 0 || target >= len(domain.AllTaskStatuses) {
		return m, nil
	}

	app, id, status := m.app, task.ID, domain.AllTaskStatuses[target]
	return m, func() tea.Msg {
		return taskMovedMsg{err: app.Store.MoveTask(context.Background(), id, status)}
	}
}

// clampCursor keeps the cursor inside the active column after the board
// contents change.
func (m *boardModel) clampCursor() {
	n := len(m.column(domain.AllTaskStatuses[m.col]))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		m.clampCursor()
		return m, nil

	case taskMovedMsg:
		if msg.err != nil {
			// The store dropped nothing: the board re-renders from its
			// unchanged state with the failure shown above it.
			m.errText = msg.err.Error()
		} else {
			m.errText = ""
		}
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, boardKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, boardKeys.Left):
		if m.col > 0 {
			m.col--
			m.cursor = 0
		}

	case key.Matches(msg, boardKeys.Right):
		if m.col < len(domain.AllTaskStatuses)-1 {
			m.col++
			m.cursor = 0
		}

	case key.Matches(msg, boardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, boardKeys.Down):
		if m.cursor < len(m.column(domain.AllTaskStatuses[m.col]))-1 {
			m.cursor++
		}

	case key.Matches(msg, boardKeys.MoveLeft):
		return m.moveSelected(-1)

	case key.Matches(msg, boardKeys.MoveRight):
		return m.moveSelected(1)

	case key.Matches(msg, boardKeys.Reload):
		m.loading = true
		return m, tea.Batch(m.loadBoard(), m.spin.Tick)
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return "\n  " + m.spin.View() + formatter.Dim("Loading board...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if p := m.app.Store.CurrentProject(); p != nil {
		stats := m.app.Store.Stats()
		b.WriteString("  " + formatter.StyleHeader.Render(p.Name) +
			"  " + formatter.Dim(fmt.Sprintf("%d%% done", stats.CompletionRate)) + "\n")
	}
	if m.errText != "" {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.errText) + "\n")
	}
	b.WriteString("\n")

	cols := make([]string, 0, len(domain.AllTaskStatuses))
	for i, status := range domain.AllTaskStatuses {
		cols = append(cols, m.renderColumn(i, status))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	var hints []string
	for _, kb := range []key.Binding{boardKeys.Left, boardKeys.Up, boardKeys.MoveLeft, boardKeys.Reload, boardKeys.Quit} {
		hints = append(hints, kb.Help().Key+": "+kb.Help().Desc)
	}
	b.WriteString("  " + formatter.Dim(strings.Join(hints, "  ")))
	return b.String()
}

func (m boardModel) renderColumn(idx int, status domain.TaskStatus) string {
	tasks := m.column(status)

	var b strings.Builder
	b.WriteString(formatter.TaskStatusLabel(status) +
		" " + formatter.Dim(fmt.Sprintf("(%d)", len(tasks))) + "\n")

	if len(tasks) == 0 {
		b.WriteString(formatter.Dim("empty") + "\n")
	}
	for i, t := range tasks {
		cursor := "  "
		style := formatter.StyleFg
		if idx == m.col && i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		line := cursor + style.Render(formatter.Truncate(t.Title, colWidth-8)) +
			" " + formatter.PriorityLabel(t.Priority)
		b.WriteString(line + "\n")
	}

	if idx == m.col {
		return colActiveStyle.Render(b.String())
	}
	return colIdleStyle.Render(b.String())
}
