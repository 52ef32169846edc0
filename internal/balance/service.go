package balance

import (
	"context"

	"github.com/dkroell/splitpot/internal/ledger"
)

// Store loads the ledger snapshot the engine folds over.
type Store interface {
	ListParticipants(ctx context.Context, eventID int64) ([]ledger.Participant, error)
	ListExpenses(ctx context.Context, eventID int64) ([]ledger.Expense, error)
	ListPayments(ctx context.Context, eventID int64) ([]ledger.Payment, error)
}

// Service computes balances and settlement suggestions for an event
type Service struct {
	store Store
}

// NewService creates a new balance service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetBalances returns each participant's net position, in join order.
func (s *Service) GetBalances(ctx context.Context, eventID int64) ([]*BalanceResponse, error) {
	participants, expenses, payments, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(participants, expenses, payments)
	if err != nil {
		return nil, err
	}

	names := nameIndex(participants)
	result := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = &BalanceResponse{
			ParticipantID: b.ParticipantID,
			Name:          names[b.ParticipantID],
			Amount:        b.Net.Float(),
		}
	}
	return result, nil
}

// GetSettlements returns the event's recorded payments followed by the
// minimal set of transfers that would settle the remaining balances.
func (s *Service) GetSettlements(ctx context.Context, eventID int64) ([]*SettlementResponse, error) {
	participants, expenses, payments, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(participants, expenses, payments)
	if err != nil {
		return nil, err
	}

	settlements := ledger.Reconcile(balances, payments)

	names := nameIndex(participants)
	result := make([]*SettlementResponse, len(settlements))
	for i, st := range settlements {
		result[i] = &SettlementResponse{
			FromID:    st.FromID,
			FromName:  names[st.FromID],
			ToID:      st.ToID,
			ToName:    names[st.ToID],
			Amount:    st.Amount.Float(),
			PaymentID: st.PaymentID,
			Pending:   st.PaymentID == nil,
		}
	}
	return result, nil
}

func (s *Service) load(ctx context.Context, eventID int64) ([]ledger.Participant, []ledger.Expense, []ledger.Payment, error) {
	participants, err := s.store.ListParticipants(ctx, eventID)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, eventID)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.store.ListPayments(ctx, eventID)
	if err != nil {
		return nil, nil, nil, err
	}
	return participants, expenses, payments, nil
}

func nameIndex(participants []ledger.Participant) map[int64]string {
	names := make(map[int64]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	return names
}
