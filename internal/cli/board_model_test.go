package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/domain"
	"github.com/teamboard/teamboard/internal/store"
	"github.com/teamboard/teamboard/internal/testutil"
)

func boardApp(t *testing.T) (*App, *testutil.FakeAPI) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)

	cfg := api.DefaultConfig()
	cfg.BaseURL = fake.URL()
	client := api.NewClient(cfg, api.StaticToken("test-token"), api.NoopObserver{})

	return &App{
		API:           client,
		Store:         store.New(client, nil),
		IsInteractive: func() bool { return true },
	}, fake
}

// runMsg feeds a message through Update and executes any returned commands
// synchronously, feeding their results back in, until the model settles.
func runMsg(t *testing.T, m tea.Model, msg tea.Msg) boardModel {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd != nil {
					queue = append(queue, cmd())
				}
			}
			continue
		}
		if next == nil {
			continue
		}
		var cmd tea.Cmd
		m, cmd = m.Update(next)
		if cmd != nil {
			queue = append(queue, cmd())
		}
	}
	bm, ok := m.(boardModel)
	require.True(t, ok)
	return bm
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBoard(t *testing.T, app *App, projectID int) boardModel {
	t.Helper()
	m := newBoardModel(app, projectID)
	return runMsg(t, m, m.Init()())
}

func TestBoard_LoadsColumns(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Launch"))
	fake.SeedTask(testutil.NewTestTask(pid, "Write docs"))
	fake.SeedTask(testutil.NewTestTask(pid, "Ship it", testutil.WithTaskStatus(domain.TaskInProgress)))
	fake.SeedTask(testutil.NewTestTask(pid, "Plan", testutil.WithTaskStatus(domain.TaskDone)))

	m := loadedBoard(t, app, pid)

	view := m.View()
	assert.Contains(t, view, "Launch")
	assert.Contains(t, view, "Write docs")
	assert.Contains(t, view, "Ship it")
	assert.Contains(t, view, "Plan")
	assert.Contains(t, view, "33% done")
}

func TestBoard_UnknownProjectShowsError(t *testing.T) {
	app, _ := boardApp(t)

	m := loadedBoard(t, app, 42)

	assert.Contains(t, m.View(), "project 42 not found")
}

func TestBoard_MoveAdvancesColumn(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Launch"))
	fake.SeedTask(testutil.NewTestTask(pid, "Write docs"))

	m := loadedBoard(t, app, pid)
	m = runMsg(t, m, keyPress("L"))

	require.Len(t, app.Store.Tasks(), 1)
	assert.Equal(t, domain.TaskInProgress, app.Store.Tasks()[0].Status)
	assert.Equal(t, 1, fake.CountRequests("PUT /tasks/1"))
}

func TestBoard_MovePastLastColumnIsNoop(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Launch"))
	fake.SeedTask(testutil.NewTestTask(pid, "Plan", testutil.WithTaskStatus(domain.TaskDone)))

	m := loadedBoard(t, app, pid)
	m = runMsg(t, m, keyPress("l")) // in_progress
	m = runMsg(t, m, keyPress("l")) // done
	before := len(fake.Requests())

	m = runMsg(t, m, keyPress("L"))

	assert.Equal(t, before, len(fake.Requests()), "no column to the right, nothing sent")
	assert.Equal(t, domain.TaskDone, app.Store.Tasks()[0].Status)
}

func TestBoard_MoveFailureKeepsBoard(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Launch"))
	fake.SeedTask(testutil.NewTestTask(pid, "Write docs"))

	m := loadedBoard(t, app, pid)
	fake.FailWith("PUT /tasks/1", 500, "boom")

	m = runMsg(t, m, keyPress("L"))

	assert.Contains(t, m.View(), "boom")
	assert.Equal(t, domain.TaskTodo, app.Store.Tasks()[0].Status, "cache untouched on failure")
}

func TestBoard_CursorNavigation(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Launch"))
	fake.SeedTask(testutil.NewTestTask(pid, "First"))
	fake.SeedTask(testutil.NewTestTask(pid, "Second"))

	m := loadedBoard(t, app, pid)
	require.Equal(t, 0, m.cursor)

	m = runMsg(t, m, keyPress("j"))
	assert.Equal(t, 1, m.cursor)

	m = runMsg(t, m, keyPress("j"))
	assert.Equal(t, 1, m.cursor, "cursor stops at the last task")

	m = runMsg(t, m, keyPress("k"))
	assert.Equal(t, 0, m.cursor)

	m = runMsg(t, m, keyPress("l"))
	assert.Equal(t, 1, m.col)
	assert.Equal(t, 0, m.cursor, "cursor resets when switching columns")
}

func TestBoard_QuitKeys(t *testing.T) {
	app, fake := boardApp(t)
	pid := fake.SeedProject(testutil.NewTestProject("Launch"))

	m := loadedBoard(t, app, pid)
	updated, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.True(t, updated.(boardModel).quitting)

	m = loadedBoard(t, app, pid)
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(boardModel).quitting)
}
