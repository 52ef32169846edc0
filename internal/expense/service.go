package expense

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
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrNoConsumers        = errors.New("at least one consumer is required")
	ErrPayerNotInEvent    = errors.New("payer is not a participant of this event")
	ErrConsumerNotInEvent = errors.New("consumer is not a participant of this event")
)

// Service handles expense business logic
type Service struct {
	repo            *Repository
	participantRepo *participant.Repository
	activities      *activity.Service
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, participantRepo *participant.Repository, activities *activity.Service) *Service {
	return &Service{
		repo:            repo,
		participantRepo: participantRepo,
		activities:      activities,
	}
}

// Create validates and records a new expense
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	amount := money.FromFloat(req.Amount)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(req.Consumers) == 0 {
		return nil, ErrNoConsumers
	}

	if err := s.checkMembership(ctx, req.EventID, req.PayerID, req.Consumers); err != nil {
		return nil, err
	}

	expense, err := s.repo.Create(ctx, req.EventID, req.PayerID, req.Description, amount, req.Consumers)
	if err != nil {
		return nil, err
	}

	s.activities.RecordExpenseAdded(ctx, expense.EventID, expense.PayerName, expense.Description, expense.Amount, expense.ID)
	return expense, nil
}

// GetByID retrieves an expense with its consumer list
func (s *Service) GetByID(ctx context.Context, id int64) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// ListByEventID retrieves all expenses of an event
func (s *Service) ListByEventID(ctx context.Context, eventID int64) ([]*Expense, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

// Update modifies an existing expense
func (s *Service) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	var amount *money.Cents
	if req.Amount != nil {
		cents := money.FromFloat(*req.Amount)
		if cents <= 0 {
			return nil, ErrInvalidAmount
		}
		amount = &cents
	}
	if req.Consumers != nil && len(req.Consumers) == 0 {
		return nil, ErrNoConsumers
	}

	payerID := existing.PayerID
	if req.PayerID != nil {
		payerID = *req.PayerID
	}
	consumers := existing.ConsumerIDs
	if req.Consumers != nil {
		consumers = req.Consumers
	}
	if err := s.checkMembership(ctx, existing.EventID, payerID, consumers); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.PayerID, req.Description, amount, req.Consumers)
}

// Delete removes an expense
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExpenseNotFound
	}
	return s.repo.Delete(ctx, id)
}

// checkMembership verifies that the payer and every consumer belong to the
// event, so the balance engine never sees a dangling reference
func (s *Service) checkMembership(ctx context.Context, eventID, payerID int64, consumers []int64) error {
	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return err
	}

	members := make(map[int64]bool, len(participants))
	for _, p := range participants {
		members[p.ID] = true
	}

	if !members[payerID] {
		return fmt.Errorf("%w: participant %d", ErrPayerNotInEvent, payerID)
	}
	for _, id := range consumers {
		if !members[id] {
			return fmt.Errorf("%w: participant %d", ErrConsumerNotInEvent, id)
		}
	}
	return nil
}
