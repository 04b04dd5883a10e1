package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoCredentials indicates no session has been persisted.
var ErrNoCredentials = errors.New("no stored credentials")

// SQLiteCredentialRepo implements CredentialRepo using a SQLite database.
type SQLiteCredentialRepo struct {
	db *sql.DB
}

// NewSQLiteCredentialRepo creates a new SQLiteCredentialRepo.
func NewSQLiteCredentialRepo(db *sql.DB) *SQLiteCredentialRepo {
	return &SQLiteCredentialRepo{db: db}
}

func (r *SQLiteCredentialRepo) Save(ctx context.Context, c *Credentials) error {
	query := `INSERT INTO credentials (id, token, user_id, email, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			saved_at = excluded.saved_at`
	_, err := r.db.ExecContext(ctx, query,
		c.Token,
		c.UserID,
		c.Email,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

func (r *SQLiteCredentialRepo) Load(ctx context.Context) (*Credentials, error) {
	query := `SELECT token, user_id, email FROM credentials WHERE id = 1`
	var c Credentials
	err := r.db.QueryRowContext(ctx, query).Scan(&c.Token, &c.UserID, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCredentialRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}
