package activity

import "time"

// Activity represents one entry in an event's activity feed
type Activity struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	Message    string    `json:"message"`
	EntityType *string   `json:"entity_type,omitempty"` // e.g., "EXPENSE", "PAYMENT", "PARTICIPANT"
	EntityID   *int64    `json:"entity_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
