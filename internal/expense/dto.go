package expense

import "github.com/dkroell/splitpot/internal/ledger"

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	EventID     int64   `json:"event_id" validate:"required"`
	PayerID     int64   `json:"payer_id" validate:"required"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Consumers   []int64 `json:"consumers" validate:"required,min=1"`
}

// UpdateExpenseRequest represents the request to update an expense.
// A nil Consumers slice leaves the consumer list unchanged.
type UpdateExpenseRequest struct {
	PayerID     *int64   `json:"payer_id,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=255"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Consumers   []int64  `json:"consumers,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	PayerID     int64     `json:"payer_id"`
	PayerName   string    `json:"payer_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Consumers   []int64   `json:"consumers"`
	Shares      []float64 `json:"shares,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO. Shares
// holds each consumer's computed portion, aligned with Consumers.
func (e *Expense) ToResponse() *ExpenseResponse {
	var shares []float64
	if split, err := ledger.Split(e.Amount, len(e.ConsumerIDs)); err == nil {
		shares = make([]float64, len(split))
		for i, s := range split {
			shares[i] = s.Float()
		}
	}

	return &ExpenseResponse{
		Shares:      shares,
		ID:          e.ID,
		EventID:     e.EventID,
		PayerID:     e.PayerID,
		PayerName:   e.PayerName,
		Description: e.Description,
		Amount:      e.Amount.Float(),
		Consumers:   e.ConsumerIDs,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
