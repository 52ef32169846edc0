package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/dkroell/splitpot/pkg/money"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and its ordered consumer list in one transaction
func (r *Repository) Create(ctx context.Context, eventID, payerID int64, description string, amount money.Cents, consumers []int64) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (event_id, payer_id, description, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query, eventID, payerID, description, amount.Decimal()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertConsumers(ctx, tx, id, consumers); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves an expense with its consumer list
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.event_id, e.payer_id, e.description, e.amount, e.created_at, p.name
		FROM expenses e
		JOIN participants p ON e.payer_id = p.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	var amt decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.EventID,
		&expense.PayerID,
		&expense.Description,
		&amt,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expense.Amount = money.FromDecimal(amt)

	consumers, err := r.consumersByExpense(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	expense.ConsumerIDs = consumers[id]

	return expense, nil
}

// ListByEventID retrieves all expenses of an event in creation order
func (r *Repository) ListByEventID(ctx context.Context, eventID int64) ([]*Expense, error) {
	query := `
		SELECT e.id, e.event_id, e.payer_id, e.description, e.amount, e.created_at, p.name
		FROM expenses e
		JOIN participants p ON e.payer_id = p.id
		WHERE e.event_id = $1
		ORDER BY e.id
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	var ids []int64
	for rows.Next() {
		expense := &Expense{}
		var amt decimal.Decimal
		if err := rows.Scan(
			&expense.ID,
			&expense.EventID,
			&expense.PayerID,
			&expense.Description,
			&amt,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.FromDecimal(amt)
		expenses = append(expenses, expense)
		ids = append(ids, expense.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	consumers, err := r.consumersByExpense(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		expense.ConsumerIDs = consumers[expense.ID]
	}

	return expenses, nil
}

// Update modifies an expense; a non-nil consumer list replaces the old one
func (r *Repository) Update(ctx context.Context, id int64, payerID *int64, description *string, amount *money.Cents, consumers []int64) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var amtParam *decimal.Decimal
	if amount != nil {
		d := amount.Decimal()
		amtParam = &d
	}

	query := `
		UPDATE expenses
		SET payer_id = COALESCE($2, payer_id),
		    description = COALESCE($3, description),
		    amount = COALESCE($4, amount)
		WHERE id = $1
		RETURNING id, event_id, payer_id, description, amount, created_at
	`

	expense := &Expense{}
	var amt decimal.Decimal
	err = tx.QueryRowContext(ctx, query, id, payerID, description, amtParam).Scan(
		&expense.ID,
		&expense.EventID,
		&expense.PayerID,
		&expense.Description,
		&amt,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	expense.Amount = money.FromDecimal(amt)

	if consumers != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM expense_consumers WHERE expense_id = $1`, id); err != nil {
			return nil, fmt.Errorf("failed to replace consumers: %w", err)
		}
		if err := insertConsumers(ctx, tx, id, consumers); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense update: %w", err)
	}

	if consumers != nil {
		expense.ConsumerIDs = consumers
		return expense, nil
	}

	existing, err := r.consumersByExpense(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	expense.ConsumerIDs = existing[id]
	return expense, nil
}

// Delete removes an expense; its consumer rows go with it via cascade
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func insertConsumers(ctx context.Context, tx *sql.Tx, expenseID int64, consumers []int64) error {
	query := `
		INSERT INTO expense_consumers (expense_id, participant_id, position)
		VALUES ($1, $2, $3)
	`
	for i, participantID := range consumers {
		if _, err := tx.ExecContext(ctx, query, expenseID, participantID, i); err != nil {
			return fmt.Errorf("failed to insert consumer: %w", err)
		}
	}
	return nil
}

// consumersByExpense loads consumer lists for the given expenses, each in
// its stored position order
func (r *Repository) consumersByExpense(ctx context.Context, expenseIDs []int64) (map[int64][]int64, error) {
	consumers := make(map[int64][]int64, len(expenseIDs))
	if len(expenseIDs) == 0 {
		return consumers, nil
	}

	query := `
		SELECT expense_id, participant_id
		FROM expense_consumers
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(expenseIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list consumers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID, participantID int64
		if err := rows.Scan(&expenseID, &participantID); err != nil {
			return nil, fmt.Errorf("failed to scan consumer: %w", err)
		}
		consumers[expenseID] = append(consumers[expenseID], participantID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list consumers: %w", err)
	}

	return consumers, nil
}
