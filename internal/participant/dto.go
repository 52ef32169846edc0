package participant

// CreateParticipantRequest represents the request to create a participant
type CreateParticipantRequest struct {
	EventID int64   `json:"event_id" validate:"required"`
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	PIN     *string `json:"pin,omitempty" validate:"omitempty,numeric,min=4,max=8"`
}

// UpdateParticipantRequest represents the request to update a participant
type UpdateParticipantRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PIN  *string `json:"pin,omitempty" validate:"omitempty,numeric,min=4,max=8"`
}

// AuthRequest represents a PIN authentication attempt
type AuthRequest struct {
	PIN string `json:"pin" validate:"required"`
}

// AuthResponse carries the signed token issued after a successful PIN check
type AuthResponse struct {
	Token       string               `json:"token"`
	Participant *ParticipantResponse `json:"participant"`
}

// ParticipantResponse represents the response for a participant
type ParticipantResponse struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	HasPIN    bool   `json:"has_pin"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		Name:      p.Name,
		IsAdmin:   p.IsAdmin,
		HasPIN:    p.HasPIN(),
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
