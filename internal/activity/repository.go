package activity

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles activity data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new activity repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new activity entry
func (r *Repository) Create(ctx context.Context, eventID int64, message string, entityType *string, entityID *int64) (*Activity, error) {
	query := `
		INSERT INTO activities (event_id, message, entity_type, entity_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, message, entity_type, entity_id, created_at
	`

	activity := &Activity{}
	err := r.db.QueryRowContext(ctx, query, eventID, message, entityType, entityID).Scan(
		&activity.ID,
		&activity.EventID,
		&activity.Message,
		&activity.EntityType,
		&activity.EntityID,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity, nil
}

// ListByEventID retrieves an event's activity feed, newest first
func (r *Repository) ListByEventID(ctx context.Context, eventID int64, limit, offset int) ([]*Activity, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM activities WHERE event_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, eventID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query := `
		SELECT id, event_id, message, entity_type, entity_id, created_at
		FROM activities
		WHERE event_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, eventID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		activity := &Activity{}
		if err := rows.Scan(
			&activity.ID,
			&activity.EventID,
			&activity.Message,
			&activity.EntityType,
			&activity.EntityID,
			&activity.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, total, nil
}
