package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dkroell/splitpot/pkg/money"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectPayment = `
	SELECT pay.id, pay.event_id, pay.from_id, pay.to_id, pay.amount, pay.created_at,
	       pf.name, pt.name
	FROM payments pay
	JOIN participants pf ON pay.from_id = pf.id
	JOIN participants pt ON pay.to_id = pt.id
`

func scanPayment(row interface{ Scan(...any) error }) (*Payment, error) {
	payment := &Payment{}
	var amt decimal.Decimal
	err := row.Scan(
		&payment.ID,
		&payment.EventID,
		&payment.FromID,
		&payment.ToID,
		&amt,
		&payment.CreatedAt,
		&payment.FromName,
		&payment.ToName,
	)
	if err != nil {
		return nil, err
	}
	payment.Amount = money.FromDecimal(amt)
	return payment, nil
}

// Create records a new payment
func (r *Repository) Create(ctx context.Context, eventID, fromID, toID int64, amount money.Cents) (*Payment, error) {
	query := `
		INSERT INTO payments (event_id, from_id, to_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, eventID, fromID, toID, amount.Decimal()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	payment, err := scanPayment(r.db.QueryRowContext(ctx, selectPayment+`WHERE pay.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// ListByEventID retrieves all payments of an event in creation order
func (r *Repository) ListByEventID(ctx context.Context, eventID int64) ([]*Payment, error) {
	rows, err := r.db.QueryContext(ctx, selectPayment+`WHERE pay.event_id = $1 ORDER BY pay.id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// Update corrects a recorded payment
func (r *Repository) Update(ctx context.Context, id int64, fromID, toID *int64, amount *money.Cents) (*Payment, error) {
	var amtParam *decimal.Decimal
	if amount != nil {
		d := amount.Decimal()
		amtParam = &d
	}

	query := `
		UPDATE payments
		SET from_id = COALESCE($2, from_id),
		    to_id = COALESCE($3, to_id),
		    amount = COALESCE($4, amount)
		WHERE id = $1
		RETURNING id
	`

	var updated int64
	err := r.db.QueryRowContext(ctx, query, id, fromID, toID, amtParam).Scan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return r.GetByID(ctx, updated)
}

// Delete removes a payment
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
