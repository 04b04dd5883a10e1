package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/db"
	"github.com/teamboard/teamboard/internal/domain"
	"github.com/teamboard/teamboard/internal/repository"
)

// newAuthServer serves /auth/verify and /auth/me, accepting only goodToken.
func newAuthServer(t *testing.T, goodToken string) *httptest.Server {
	t.Helper()
	user := domain.User{
		ID:       "7f1c5bb1-4f63-4a41-9db5-0d6f02f2b6a1",
		Email:    "ana@example.com",
		FullName: "Ana Souza",
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or expired token"})
			return
		}
		switch r.URL.Path {
		case "/auth/verify":
			json.NewEncoder(w).Encode(map[string]domain.User{"user": {ID: user.ID, Email: user.Email}})
		case "/auth/me":
			json.NewEncoder(w).Encode(user)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func setupStore(t *testing.T, baseURL string) (*Store, repository.CredentialRepo) {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	creds := repository.NewSQLiteCredentialRepo(database)
	store := NewStore(creds)

	cfg := api.DefaultConfig()
	cfg.BaseURL = baseURL
	store.Bind(api.NewClient(cfg, store, api.NoopObserver{}))

	return store, creds
}

func TestStore_SignIn_ConfirmsAndPersists(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, creds := setupStore(t, srv.URL)

	var notified []*domain.User
	store.Subscribe(func(u *domain.User) { notified = append(notified, u) })

	user, err := store.SignIn(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.FullName, "profile should come from /auth/me")
	assert.True(t, store.SignedIn())

	// Listener fired synchronously with the confirmed identity.
	require.Len(t, notified, 1)
	assert.Equal(t, user.ID, notified[0].ID)

	// Credentials persisted for the next run.
	saved, err := creds.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "good-token", saved.Token)
	assert.Equal(t, user.ID, saved.UserID)
}

func TestStore_SignIn_BadToken_LeavesSignedOut(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, creds := setupStore(t, srv.URL)

	_, err := store.SignIn(context.Background(), "wrong-token")
	require.Error(t, err)
	assert.False(t, store.SignedIn())

	_, err = store.Token(context.Background())
	assert.ErrorIs(t, err, ErrSignedOut)

	_, err = creds.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoCredentials)
}

func TestStore_Restore_ReestablishesSession(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, creds := setupStore(t, srv.URL)
	require.NoError(t, creds.Save(context.Background(), &repository.Credentials{
		Token:  "good-token",
		UserID: "7f1c5bb1-4f63-4a41-9db5-0d6f02f2b6a1",
		Email:  "ana@example.com",
	}))

	require.NoError(t, store.Restore(context.Background()))
	assert.True(t, store.SignedIn())
	assert.Equal(t, "ana@example.com", store.Current().Email)
}

func TestStore_Restore_StaleToken_ClearsCredentials(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, creds := setupStore(t, srv.URL)
	require.NoError(t, creds.Save(context.Background(), &repository.Credentials{
		Token:  "expired-token",
		UserID: "u1",
	}))

	// A stale token must not fail startup, only leave us signed out.
	require.NoError(t, store.Restore(context.Background()))
	assert.False(t, store.SignedIn())

	_, err := creds.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoCredentials)
}

func TestStore_Restore_NoCredentials(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, _ := setupStore(t, srv.URL)
	require.NoError(t, store.Restore(context.Background()))
	assert.False(t, store.SignedIn())
}

func TestStore_SignOut_NotifiesAndClears(t *testing.T) {
	srv := newAuthServer(t, "good-token")
	defer srv.Close()

	store, creds := setupStore(t, srv.URL)
	_, err := store.SignIn(context.Background(), "good-token")
	require.NoError(t, err)

	var notified []*domain.User
	store.Subscribe(func(u *domain.User) { notified = append(notified, u) })

	require.NoError(t, store.SignOut(context.Background()))
	assert.False(t, store.SignedIn())

	require.Len(t, notified, 1)
	assert.Nil(t, notified[0], "sign-out notifies listeners with nil identity")

	_, err = creds.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoCredentials)
}
