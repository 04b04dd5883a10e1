package repository

import "context"

// Credentials is a persisted session: the bearer token plus the identity
// it was verified against, so the client can restore a session at startup.
type Credentials struct {
	Token  string
	UserID string
	Email  string
}

// CredentialRepo stores at most one set of session credentials.
type CredentialRepo interface {
	Save(ctx context.Context, c *Credentials) error
	Load(ctx context.Context) (*Credentials, error)
	Clear(ctx context.Context) error
}
