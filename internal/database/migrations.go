package database

import (
	"database/sql"
	"fmt"
)

// schema is applied on startup; every statement is idempotent so restarts
// are safe without a separate migration tool.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		public_id UUID NOT NULL UNIQUE,
		name TEXT NOT NULL,
		currency CHAR(3) NOT NULL DEFAULT 'USD',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		pin_hash TEXT,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (event_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		payer_id BIGINT NOT NULL REFERENCES participants(id),
		description TEXT NOT NULL DEFAULT '',
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS expense_consumers (
		id BIGSERIAL PRIMARY KEY,
		expense_id BIGINT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
		participant_id BIGINT NOT NULL REFERENCES participants(id),
		position INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expense_consumers_expense ON expense_consumers(expense_id, position)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		from_id BIGINT NOT NULL REFERENCES participants(id),
		to_id BIGINT NOT NULL REFERENCES participants(id),
		amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGSERIAL PRIMARY KEY,
		event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		entity_type TEXT,
		entity_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
