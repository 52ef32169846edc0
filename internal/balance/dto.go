package balance

// BalanceResponse represents one participant's net position. A positive
// amount means the participant is owed money, negative means they owe.
type BalanceResponse struct {
	ParticipantID int64   `json:"participant_id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
}

// SettlementResponse represents either a recorded payment or a suggested
// transfer that is still outstanding. PaymentID is set only for the former.
type SettlementResponse struct {
	FromID    int64   `json:"from_id"`
	FromName  string  `json:"from_name"`
	ToID      int64   `json:"to_id"`
	ToName    string  `json:"to_name"`
	Amount    float64 `json:"amount"`
	PaymentID *int64  `json:"payment_id,omitempty"`
	Pending   bool    `json:"pending"`
}
