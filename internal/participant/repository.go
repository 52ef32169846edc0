package participant

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles participant data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participant repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new participant into the database
func (r *Repository) Create(ctx context.Context, eventID int64, name string, pinHash *string, isAdmin bool) (*Participant, error) {
	query := `
		INSERT INTO participants (event_id, name, pin_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, name, pin_hash, is_admin, created_at
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, eventID, name, pinHash, isAdmin).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.Name,
		&participant.PINHash,
		&participant.IsAdmin,
		&participant.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return participant, nil
}

// GetByID retrieves a participant by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Participant, error) {
	query := `
		SELECT id, event_id, name, pin_hash, is_admin, created_at
		FROM participants
		WHERE id = $1
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.Name,
		&participant.PINHash,
		&participant.IsAdmin,
		&participant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}

// GetByEventAndName retrieves a participant by event and display name
func (r *Repository) GetByEventAndName(ctx context.Context, eventID int64, name string) (*Participant, error) {
	query := `
		SELECT id, event_id, name, pin_hash, is_admin, created_at
		FROM participants
		WHERE event_id = $1 AND name = $2
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, eventID, name).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.Name,
		&participant.PINHash,
		&participant.IsAdmin,
		&participant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}

// ListByEventID retrieves all participants of an event in creation order
func (r *Repository) ListByEventID(ctx context.Context, eventID int64) ([]*Participant, error) {
	query := `
		SELECT id, event_id, name, pin_hash, is_admin, created_at
		FROM participants
		WHERE event_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		participant := &Participant{}
		if err := rows.Scan(
			&participant.ID,
			&participant.EventID,
			&participant.Name,
			&participant.PINHash,
			&participant.IsAdmin,
			&participant.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return participants, nil
}

// Update modifies a participant's name and/or PIN hash
func (r *Repository) Update(ctx context.Context, id int64, name *string, pinHash *string) (*Participant, error) {
	query := `
		UPDATE participants
		SET name = COALESCE($2, name),
		    pin_hash = COALESCE($3, pin_hash)
		WHERE id = $1
		RETURNING id, event_id, name, pin_hash, is_admin, created_at
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id, name, pinHash).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.Name,
		&participant.PINHash,
		&participant.IsAdmin,
		&participant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return participant, nil
}

// SetAdmin flips the administrative flag
func (r *Repository) SetAdmin(ctx context.Context, id int64, isAdmin bool) (*Participant, error) {
	query := `
		UPDATE participants
		SET is_admin = $2
		WHERE id = $1
		RETURNING id, event_id, name, pin_hash, is_admin, created_at
	`

	participant := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id, isAdmin).Scan(
		&participant.ID,
		&participant.EventID,
		&participant.Name,
		&participant.PINHash,
		&participant.IsAdmin,
		&participant.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set admin flag: %w", err)
	}

	return participant, nil
}

// CountByEventID returns how many participants an event has
func (r *Repository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// CountAdmins returns how many admins an event has
func (r *Repository) CountAdmins(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participants WHERE event_id = $1 AND is_admin`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// IsReferenced reports whether any expense or payment still points at the
// participant. Deleting such a participant would leave dangling references
// the balance engine rejects.
func (r *Repository) IsReferenced(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM expenses WHERE payer_id = $1)
		    OR EXISTS (SELECT 1 FROM expense_consumers WHERE participant_id = $1)
		    OR EXISTS (SELECT 1 FROM payments WHERE from_id = $1 OR to_id = $1)
	`

	var referenced bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check participant references: %w", err)
	}
	return referenced, nil
}

// Delete removes a participant
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}
