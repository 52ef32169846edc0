package event

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

// Service handles event business logic
type Service struct {
	repo *Repository
}

// NewService creates a new event service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new event
func (s *Service) Create(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	if req.Currency != "" && len(req.Currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	req.Currency = strings.ToUpper(req.Currency)
	return s.repo.Create(ctx, req)
}

// GetByID retrieves an event by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListByIDs retrieves events by ID, preserving the caller's order
func (s *Service) ListByIDs(ctx context.Context, ids []int64) ([]*Event, error) {
	return s.repo.ListByIDs(ctx, ids)
}

// Update modifies an existing event
func (s *Service) Update(ctx context.Context, id int64, req *UpdateEventRequest) (*Event, error) {
	if req.Currency != nil {
		if len(*req.Currency) != 3 {
			return nil, ErrInvalidCurrency
		}
		upper := strings.ToUpper(*req.Currency)
		req.Currency = &upper
	}

	event, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Delete removes an event
func (s *Service) Delete(ctx context.Context, id int64) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return s.repo.Delete(ctx, id)
}
