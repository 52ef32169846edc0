package participant

import "time"

// Participant represents a member of an event
type Participant struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	PINHash   *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// HasPIN reports whether the participant protected their identity with a PIN
func (p *Participant) HasPIN() bool {
	return p.PINHash != nil && *p.PINHash != ""
}
