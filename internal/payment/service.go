package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkroell/splitpot/internal/activity"
	"github.com/dkroell/splitpot/internal/participant"
	"github.com/dkroell/splitpot/pkg/money"
)

// Common errors
var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrSameParticipant       = errors.New("source and destination must differ")
	ErrParticipantNotInEvent = errors.New("participant does not belong to this event")
)

// Service handles payment business logic
type Service struct {
	repo            *Repository
	participantRepo *participant.Repository
	activities      *activity.Service
}

// NewService creates a new payment service with dependencies injected
func NewService(repo *Repository, participantRepo *participant.Repository, activities *activity.Service) *Service {
	return &Service{
		repo:            repo,
		participantRepo: participantRepo,
		activities:      activities,
	}
}

// Create validates and records a payment between two participants
func (s *Service) Create(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	amount := money.FromFloat(req.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromID == req.ToID {
		return nil, ErrSameParticipant
	}
	if err := s.checkMembership(ctx, req.EventID, req.FromID, req.ToID); err != nil {
		return nil, err
	}

	payment, err := s.repo.Create(ctx, req.EventID, req.FromID, req.ToID, amount)
	if err != nil {
		return nil, err
	}

	s.activities.RecordPaymentRecorded(ctx, payment.EventID, payment.FromName, payment.ToName, payment.Amount, payment.ID)
	return payment, nil
}

// GetByID retrieves a payment by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// ListByEventID retrieves all payments of an event
func (s *Service) ListByEventID(ctx context.Context, eventID int64) ([]*Payment, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

// Update corrects a recorded payment
func (s *Service) Update(ctx context.Context, id int64, req *UpdatePaymentRequest) (*Payment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPaymentNotFound
	}

	var amount *money.Cents
	if req.Amount != nil {
		cents := money.FromFloat(*req.Amount)
		if cents <= 0 {
			return nil, ErrInvalidAmount
		}
		amount = &cents
	}

	fromID := existing.FromID
	if req.FromID != nil {
		fromID = *req.FromID
	}
	toID := existing.ToID
	if req.ToID != nil {
		toID = *req.ToID
	}
	if fromID == toID {
		return nil, ErrSameParticipant
	}
	if err := s.checkMembership(ctx, existing.EventID, fromID, toID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.FromID, req.ToID, amount)
}

// Delete removes a payment
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPaymentNotFound
	}
	return s.repo.Delete(ctx, id)
}

// checkMembership verifies that both participants belong to the event
func (s *Service) checkMembership(ctx context.Context, eventID int64, ids ...int64) error {
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return err
	}

	members := make(map[int64]bool, len(participants))
	for _, p := range participants {
		members[p.ID] = true
	}

	for _, id := range ids {
		if !members[id] {
			return fmt.Errorf("%w: participant %d", ErrParticipantNotInEvent, id)
		}
	}
	return nil
}
