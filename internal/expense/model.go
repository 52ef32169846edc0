package expense

import (
	"time"

	"github.com/dkroell/splitpot/pkg/money"
)

// Expense represents a shared expense: the payer fronted the full amount and
// the consumers owe their shares. ConsumerIDs keeps the caller's order;
// duplicates are allowed and each occurrence counts as one extra share.
type Expense struct {
	ID          int64       `json:"id"`
	EventID     int64       `json:"event_id"`
	PayerID     int64       `json:"payer_id"`
	Description string      `json:"description"`
	Amount      money.Cents `json:"-"`
	ConsumerIDs []int64     `json:"consumer_ids"`
	CreatedAt   time.Time   `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}
