package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the schema statements, applied in order. Statements must
// stay idempotent since the whole list re-runs at every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS credentials (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		user_id TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		saved_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
