package balance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dkroell/splitpot/internal/ledger"
	"github.com/dkroell/splitpot/pkg/money"
)

// Repository loads an event's ledger snapshot from Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new balance repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListParticipants returns the participants of an event in join order
func (r *Repository) ListParticipants(ctx context.Context, eventID int64) ([]ledger.Participant, error) {
	query := `
		SELECT id, name, is_admin
		FROM participants
		WHERE event_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []ledger.Participant
	for rows.Next() {
		var p ledger.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return participants, nil
}

// ListExpenses returns the expenses of an event with their consumer lists
func (r *Repository) ListExpenses(ctx context.Context, eventID int64) ([]ledger.Expense, error) {
	query := `
		SELECT e.id, e.payer_id, e.amount, e.description, ec.participant_id
		FROM expenses e
		JOIN expense_consumers ec ON ec.expense_id = e.id
		WHERE e.event_id = $1
		ORDER BY e.id, ec.position
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ledger.Expense
	for rows.Next() {
		var (
			id, payerID, consumerID int64
			amt                     decimal.Decimal
			description             sql.NullString
		)
		if err := rows.Scan(&id, &payerID, &amt, &description, &consumerID); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		// Rows arrive grouped by expense, one row per consumer.
		if len(expenses) == 0 || expenses[len(expenses)-1].ID != id {
			expenses = append(expenses, ledger.Expense{
				ID:          id,
				PayerID:     payerID,
				Amount:      money.FromDecimal(amt),
				Description: description.String,
			})
		}
		last := &expenses[len(expenses)-1]
		last.ConsumerIDs = append(last.ConsumerIDs, consumerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// ListPayments returns the payments of an event in creation order
func (r *Repository) ListPayments(ctx context.Context, eventID int64) ([]ledger.Payment, error) {
	query := `
		SELECT id, from_id, to_id, amount
		FROM payments
		WHERE event_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []ledger.Payment
	for rows.Next() {
		var (
			p   ledger.Payment
			amt decimal.Decimal
		)
		if err := rows.Scan(&p.ID, &p.FromID, &p.ToID, &amt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Amount = money.FromDecimal(amt)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}
