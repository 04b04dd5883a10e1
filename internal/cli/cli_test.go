package cli

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamboard/teamboard/internal/domain"
	"github.com/teamboard/teamboard/internal/testutil"
)

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestParseID(t *testing.T) {
	id, err := parseID("12", "project")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad, "project")
		assert.Error(t, err, bad)
	}
}

func TestProjectAdd_CreatesOnServer(t *testing.T) {
	app, fake := boardApp(t)

	err := execute(t, app, "project", "add", "--name", "Alpha")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.ProjectCount())
	require.Len(t, app.Store.Projects(), 1)
	assert.Equal(t, "Alpha", app.Store.Projects()[0].Name)
}

func TestProjectAdd_MissingNameNonInteractive(t *testing.T) {
	app, fake := boardApp(t)
	app.IsInteractive = func() bool { return false }

	err := execute(t, app, "project", "add")
	require.Error(t, err)
	assert.Equal(t, 0, fake.ProjectCount())
}

func TestProjectRemove_RefusesWithoutTerminalOrYes(t *testing.T) {
	app, fake := boardApp(t)
	app.IsInteractive = func() bool { return false }

	pid := fake.SeedProject(testutil.NewTestProject("Alpha"))

	err := execute(t, app, "project", "remove", strconv.Itoa(pid))
	require.Error(t, err)
	assert.Equal(t, 1, fake.ProjectCount())

	err = execute(t, app, "project", "remove", strconv.Itoa(pid), "--yes")
	require.NoError(t, err)
	assert.Equal(t, 0, fake.ProjectCount())
}

func TestTaskMove_SameColumnSendsNothing(t *testing.T) {
	app, fake := boardApp(t)

	pid := fake.SeedProject(testutil.NewTestProject("Alpha"))
	tid := fake.SeedTask(testutil.NewTestTask(pid, "Write docs"))

	err := execute(t, app, "task", "move", strconv.Itoa(pid), strconv.Itoa(tid), "todo")
	require.NoError(t, err)
	assert.Equal(t, 0, fake.CountRequests(fmt.Sprintf("PUT /tasks/%d", tid)))

	err = execute(t, app, "task", "move", strconv.Itoa(pid), strconv.Itoa(tid), "done")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.CountRequests(fmt.Sprintf("PUT /tasks/%d", tid)))
	assert.Equal(t, domain.TaskDone, app.Store.Tasks()[0].Status)
}

func TestTaskAdd_UnknownProjectFails(t *testing.T) {
	app, fake := boardApp(t)
	app.IsInteractive = func() bool { return false }

	err := execute(t, app, "task", "add", "99", "--title", "Orphan")
	require.Error(t, err)
	assert.Equal(t, 0, fake.CountRequests("POST /projects/99/tasks"))
}
