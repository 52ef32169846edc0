package payment

import (
	"time"

	"github.com/dkroell/splitpot/pkg/money"
)

// Payment represents money that actually moved between two participants,
// independent of any suggested settlement
type Payment struct {
	ID        int64       `json:"id"`
	EventID   int64       `json:"event_id"`
	FromID    int64       `json:"from_id"`
	ToID      int64       `json:"to_id"`
	Amount    money.Cents `json:"-"`
	CreatedAt time.Time   `json:"created_at"`

	// Populated via JOIN
	FromName string `json:"from_name,omitempty"`
	ToName   string `json:"to_name,omitempty"`
}
