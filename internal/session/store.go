package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/teamboard/teamboard/internal/domain"
	"github.com/teamboard/teamboard/internal/repository"
)

// ErrSignedOut indicates a token was requested with no active session.
var ErrSignedOut = errors.New("not signed in")

// Verifier checks a session token against the auth endpoints.
// *api.Client satisfies this.
type Verifier interface {
	VerifyToken(ctx context.Context) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
}

// Store tracks the authenticated identity and supplies the bearer token
// the API client attaches to every request. Listeners are notified
// synchronously whenever a session is confirmed or cleared, so protected
// views can gate rendering.
type Store struct {
	mu       sync.Mutex
	token    string
	user     *domain.User
	verifier Verifier
	creds    repository.CredentialRepo

	listeners []func(*domain.User)
}

// NewStore creates a Store persisting credentials through creds.
// Bind must be called before SignIn or Restore.
func NewStore(creds repository.CredentialRepo) *Store {
	return &Store{creds: creds}
}

// Bind attaches the API-backed verifier. The verifier is constructed after
// the Store because the API client reads its token from this Store.
func (s *Store) Bind(v Verifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifier = v
}

// Token implements api.TokenSource. It is called immediately before every
// outgoing request.
func (s *Store) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrSignedOut
	}
	return s.token, nil
}

// Current returns the authenticated user, or nil when signed out.
func (s *Store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SignedIn reports whether a session is active.
func (s *Store) SignedIn() bool {
	return s.Current() != nil
}

// Subscribe registers a listener invoked synchronously on every session
// change. The listener receives the new identity, or nil on sign-out.
func (s *Store) Subscribe(fn func(*domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SignIn verifies the given token, loads the user's profile, persists the
// credentials and notifies listeners. On any failure the session is left
// signed out.
func (s *Store) SignIn(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, fmt.Errorf("session token is required")
	}

	s.setToken(token)

	user, err := s.verifier.VerifyToken(ctx)
	if err != nil {
		s.setToken("")
		return nil, fmt.Errorf("verifying session: %w", err)
	}

	// The profile endpoint fills in name and avatar; the verify response
	// is enough to proceed if it fails.
	if profile, err := s.verifier.Me(ctx); err == nil {
		user = profile
	}

	if err := s.creds.Save(ctx, &repository.Credentials{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
	}); err != nil {
		s.setToken("")
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.confirm(user)
	return user, nil
}

// Restore re-establishes a previously persisted session, if any.
// A missing or stale credential record leaves the store signed out;
// only unexpected failures are returned.
func (s *Store) Restore(ctx context.Context) error {
	creds, err := s.creds.Load(ctx)
	if errors.Is(err, repository.ErrNoCredentials) {
		return nil
	}
	if err != nil {
		return err
	}

	s.setToken(creds.Token)

	user, err := s.verifier.VerifyToken(ctx)
	if err != nil {
		// Stale token: drop it rather than fail startup.
		s.setToken("")
		_ = s.creds.Clear(ctx)
		return nil
	}

	if profile, meErr := s.verifier.Me(ctx); meErr == nil {
		user = profile
	}

	s.confirm(user)
	return nil
}

// SignOut clears the session and its persisted credentials, then notifies
// listeners so session-scoped caches can reset.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	listeners := append([]func(*domain.User){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	return nil
}

func (s *Store) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *Store) confirm(user *domain.User) {
	s.mu.Lock()
	s.user = user
	listeners := append([]func(*domain.User){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}
