package activity

import (
	"context"
	"fmt"
	"log"

	"github.com/dkroell/splitpot/pkg/money"
)

// Service handles activity business logic. Recording is best-effort: a feed
// entry that fails to write must never fail the operation it describes.
type Service struct {
	repo *Repository
}

// NewService creates a new activity service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListByEventID retrieves an event's activity feed
func (s *Service) ListByEventID(ctx context.Context, eventID int64, page, perPage int) ([]*Activity, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByEventID(ctx, eventID, perPage, offset)
}

// RecordExpenseAdded notes a new expense in the feed
func (s *Service) RecordExpenseAdded(ctx context.Context, eventID int64, payerName, description string, amount money.Cents, expenseID int64) {
	if description == "" {
		description = "an expense"
	}
	message := fmt.Sprintf("%s paid %.2f for %s", payerName, amount.Float(), description)
	s.record(ctx, eventID, message, "EXPENSE", expenseID)
}

// RecordPaymentRecorded notes a direct payment in the feed
func (s *Service) RecordPaymentRecorded(ctx context.Context, eventID int64, fromName, toName string, amount money.Cents, paymentID int64) {
	message := fmt.Sprintf("%s paid %s %.2f", fromName, toName, amount.Float())
	s.record(ctx, eventID, message, "PAYMENT", paymentID)
}

// RecordParticipantJoined notes a new participant in the feed
func (s *Service) RecordParticipantJoined(ctx context.Context, eventID int64, name string, participantID int64) {
	message := fmt.Sprintf("%s joined the event", name)
	s.record(ctx, eventID, message, "PARTICIPANT", participantID)
}

func (s *Service) record(ctx context.Context, eventID int64, message, entityType string, entityID int64) {
	if _, err := s.repo.Create(ctx, eventID, message, &entityType, &entityID); err != nil {
		log.Printf("failed to record activity for event %d: %v", eventID, err)
	}
}
