package event

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID        int64  `json:"id"`
	PublicID  string `json:"public_id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts an Event model to an EventResponse DTO
func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:        e.ID,
		PublicID:  e.PublicID.String(),
		Name:      e.Name,
		Currency:  e.Currency,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
