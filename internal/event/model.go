package event

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an ad-hoc group sharing expenses
type Event struct {
	ID        int64     `json:"id"`
	PublicID  uuid.UUID `json:"public_id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}
