package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles event data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new event repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new event into the database
func (r *Repository) Create(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	query := `
		INSERT INTO events (public_id, name, currency)
		VALUES ($1, $2, $3)
		RETURNING id, public_id, name, currency, created_at
	`

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	event := &Event{}
	err := r.db.QueryRowContext(ctx, query, uuid.New(), req.Name, currency).Scan(
		&event.ID,
		&event.PublicID,
		&event.Name,
		&event.Currency,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Event, error) {
	query := `
		SELECT id, public_id, name, currency, created_at
		FROM events
		WHERE id = $1
	`

	event := &Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.PublicID,
		&event.Name,
		&event.Currency,
		&event.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// ListByIDs retrieves events for the given IDs, preserving the input order.
// IDs that no longer exist are silently skipped.
func (r *Repository) ListByIDs(ctx context.Context, ids []int64) ([]*Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, public_id, name, currency, created_at
		FROM events
		WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*Event, len(ids))
	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(
			&event.ID,
			&event.PublicID,
			&event.Name,
			&event.Currency,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		byID[event.ID] = event
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*Event, 0, len(ids))
	for _, id := range ids {
		if event, ok := byID[id]; ok {
			events = append(events, event)
		}
	}
	return events, nil
}

// Update modifies an existing event
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateEventRequest) (*Event, error) {
	query := `
		UPDATE events
		SET name = COALESCE($2, name),
		    currency = COALESCE($3, currency)
		WHERE id = $1
		RETURNING id, public_id, name, currency, created_at
	`

	event := &Event{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Currency).Scan(
		&event.ID,
		&event.PublicID,
		&event.Name,
		&event.Currency,
		&event.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes an event and, via cascades, everything recorded under it
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
