package payment

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	EventID int64   `json:"event_id" validate:"required"`
	FromID  int64   `json:"from_id" validate:"required"`
	ToID    int64   `json:"to_id" validate:"required,nefield=FromID"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// UpdatePaymentRequest represents the request to correct a recorded payment
type UpdatePaymentRequest struct {
	FromID *int64   `json:"from_id,omitempty"`
	ToID   *int64   `json:"to_id,omitempty"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	FromID    int64   `json:"from_id"`
	FromName  string  `json:"from_name,omitempty"`
	ToID      int64   `json:"to_id"`
	ToName    string  `json:"to_name,omitempty"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		FromID:    p.FromID,
		FromName:  p.FromName,
		ToID:      p.ToID,
		ToName:    p.ToName,
		Amount:    p.Amount.Float(),
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
