package participant

import (
	"context"
	"errors"

	"github.com/dkroell/splitpot/internal/activity"
	"github.com/dkroell/splitpot/internal/auth"
)

// Common errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNameTaken           = errors.New("name already taken in this event")
	ErrParticipantInUse    = errors.New("participant is referenced by expenses or payments")
	ErrNoPIN               = errors.New("participant has no PIN set")
	ErrWrongPIN            = errors.New("wrong PIN")
	ErrLastAdmin           = errors.New("cannot demote the last admin")
)

// Service handles participant business logic
type Service struct {
	repo       *Repository
	tokens     *auth.TokenManager
	activities *activity.Service
}

// NewService creates a new participant service
func NewService(repo *Repository, tokens *auth.TokenManager, activities *activity.Service) *Service {
	return &Service{repo: repo, tokens: tokens, activities: activities}
}

// Create adds a participant to an event. The first participant of an event
// becomes its admin.
func (s *Service) Create(ctx context.Context, req *CreateParticipantRequest) (*Participant, error) {
	existing, err := s.repo.GetByEventAndName(ctx, req.EventID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	var pinHash *string
	if req.PIN != nil && *req.PIN != "" {
		hash, err := auth.HashPIN(*req.PIN)
		if err != nil {
			return nil, err
		}
		pinHash = &hash
	}

	count, err := s.repo.CountByEventID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.EventID, req.Name, pinHash, count == 0)
	if err != nil {
		return nil, err
	}

	s.activities.RecordParticipantJoined(ctx, created.EventID, created.Name, created.ID)
	return created, nil
}

// GetByID retrieves a participant by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Participant, error) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return participant, nil
}

// ListByEventID retrieves all participants of an event
func (s *Service) ListByEventID(ctx context.Context, eventID int64) ([]*Participant, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

// Update modifies a participant's name and/or PIN
func (s *Service) Update(ctx context.Context, id int64, req *UpdateParticipantRequest) (*Participant, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrParticipantNotFound
	}

	if req.Name != nil && *req.Name != existing.Name {
		taken, err := s.repo.GetByEventAndName(ctx, existing.EventID, *req.Name)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrNameTaken
		}
	}

	var pinHash *string
	if req.PIN != nil && *req.PIN != "" {
		hash, err := auth.HashPIN(*req.PIN)
		if err != nil {
			return nil, err
		}
		pinHash = &hash
	}

	return s.repo.Update(ctx, id, req.Name, pinHash)
}

// Authenticate verifies a participant's PIN and issues a signed token
func (s *Service) Authenticate(ctx context.Context, id int64, pin string) (string, *Participant, error) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if participant == nil {
		return "", nil, ErrParticipantNotFound
	}
	if !participant.HasPIN() {
		return "", nil, ErrNoPIN
	}

	if err := auth.VerifyPIN(*participant.PINHash, pin); err != nil {
		return "", nil, ErrWrongPIN
	}

	token, err := s.tokens.Issue(participant.ID, participant.EventID, participant.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, participant, nil
}

// Promote grants the administrative flag
func (s *Service) Promote(ctx context.Context, id int64) (*Participant, error) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return s.repo.SetAdmin(ctx, id, true)
}

// Demote revokes the administrative flag, refusing to leave the event
// without any admin
func (s *Service) Demote(ctx context.Context, id int64) (*Participant, error) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	if participant.IsAdmin {
		admins, err := s.repo.CountAdmins(ctx, participant.EventID)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, ErrLastAdmin
		}
	}
	return s.repo.SetAdmin(ctx, id, false)
}

// Delete removes a participant unless expenses or payments still reference
// them
func (s *Service) Delete(ctx context.Context, id int64) error {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrParticipantNotFound
	}

	referenced, err := s.repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrParticipantInUse
	}

	return s.repo.Delete(ctx, id)
}
