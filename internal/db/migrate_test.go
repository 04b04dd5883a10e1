package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'credentials'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "credentials", name)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Running migrations again must be a no-op, not an error.
	require.NoError(t, Migrate(database))
}
