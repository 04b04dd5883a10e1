package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamboard/teamboard/internal/db"
)

func setupRepo(t *testing.T) *SQLiteCredentialRepo {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteCredentialRepo(database)
}

func TestCredentialRepo_Roundtrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNoCredentials)

	creds := &Credentials{
		Token:  "jwt-token",
		UserID: "7f1c5bb1-4f63-4a41-9db5-0d6f02f2b6a1",
		Email:  "ana@example.com",
	}
	require.NoError(t, repo.Save(ctx, creds))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", loaded.Token)
	assert.Equal(t, creds.UserID, loaded.UserID)
	assert.Equal(t, "ana@example.com", loaded.Email)
}

func TestCredentialRepo_SaveOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Credentials{Token: "old", UserID: "u1"}))
	require.NoError(t, repo.Save(ctx, &Credentials{Token: "new", UserID: "u1"}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.Token)
}

func TestCredentialRepo_Clear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Credentials{Token: "t", UserID: "u"}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNoCredentials)

	// Clearing an already-empty store is fine.
	require.NoError(t, repo.Clear(ctx))
}
