package balance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/balance"
	"github.com/dkroell/splitpot/internal/ledger"
)

type stubStore struct {
	participants []ledger.Participant
	expenses     []ledger.Expense
	payments     []ledger.Payment
	err          error
}

func (s *stubStore) ListParticipants(ctx context.Context, eventID int64) ([]ledger.Participant, error) {
	return s.participants, s.err
}

func (s *stubStore) ListExpenses(ctx context.Context, eventID int64) ([]ledger.Expense, error) {
	return s.expenses, s.err
}

func (s *stubStore) ListPayments(ctx context.Context, eventID int64) ([]ledger.Payment, error) {
	return s.payments, s.err
}

func TestGetBalances(t *testing.T) {
	store := &stubStore{
		participants: []ledger.Participant{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
			{ID: 3, Name: "Carol"},
		},
		expenses: []ledger.Expense{
			{ID: 1, PayerID: 1, Amount: 10000, ConsumerIDs: []int64{1, 2, 3}},
		},
	}
	service := balance.NewService(store)

	balances, err := service.GetBalances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	// Alice is the first consumer, so her share absorbs the leftover cent.
	assert.Equal(t, "Alice", balances[0].Name)
	assert.InDelta(t, 66.66, balances[0].Amount, 0.001)
	assert.InDelta(t, -33.33, balances[1].Amount, 0.001)
	assert.InDelta(t, -33.33, balances[2].Amount, 0.001)
}

func TestGetBalancesEmptyEvent(t *testing.T) {
	store := &stubStore{
		participants: []ledger.Participant{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
	}
	service := balance.NewService(store)

	balances, err := service.GetBalances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	for _, b := range balances {
		assert.Zero(t, b.Amount)
	}
}

func TestGetBalancesUnknownConsumer(t *testing.T) {
	store := &stubStore{
		participants: []ledger.Participant{{ID: 1, Name: "Alice"}},
		expenses: []ledger.Expense{
			{ID: 1, PayerID: 1, Amount: 5000, ConsumerIDs: []int64{99}},
		},
	}
	service := balance.NewService(store)

	_, err := service.GetBalances(context.Background(), 1)
	assert.ErrorIs(t, err, ledger.ErrUnknownParticipant)
}

func TestGetBalancesStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	service := balance.NewService(&stubStore{err: boom})

	_, err := service.GetBalances(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestGetSettlements(t *testing.T) {
	store := &stubStore{
		participants: []ledger.Participant{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
			{ID: 3, Name: "Carol"},
		},
		expenses: []ledger.Expense{
			{ID: 1, PayerID: 1, Amount: 9999, ConsumerIDs: []int64{1, 2, 3}},
		},
		payments: []ledger.Payment{
			{ID: 7, FromID: 2, ToID: 1, Amount: 1000},
		},
	}
	service := balance.NewService(store)

	settlements, err := service.GetSettlements(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, settlements, 3)

	// The recorded payment comes first and carries its reference.
	recorded := settlements[0]
	require.NotNil(t, recorded.PaymentID)
	assert.Equal(t, int64(7), *recorded.PaymentID)
	assert.Equal(t, "Bob", recorded.FromName)
	assert.Equal(t, "Alice", recorded.ToName)
	assert.InDelta(t, 10.00, recorded.Amount, 0.001)
	assert.False(t, recorded.Pending)

	// Bob still owes the rest of his share, Carol her full share.
	assert.True(t, settlements[1].Pending)
	assert.Nil(t, settlements[1].PaymentID)
	assert.Equal(t, "Bob", settlements[1].FromName)
	assert.InDelta(t, 23.33, settlements[1].Amount, 0.001)

	assert.True(t, settlements[2].Pending)
	assert.Equal(t, "Carol", settlements[2].FromName)
	assert.InDelta(t, 33.33, settlements[2].Amount, 0.001)
}

func TestGetSettlementsNothingOwed(t *testing.T) {
	store := &stubStore{
		participants: []ledger.Participant{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
		expenses: []ledger.Expense{
			{ID: 1, PayerID: 1, Amount: 4000, ConsumerIDs: []int64{1, 2}},
		},
		payments: []ledger.Payment{
			{ID: 3, FromID: 2, ToID: 1, Amount: 2000},
		},
	}
	service := balance.NewService(store)

	settlements, err := service.GetSettlements(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, settlements, 1)
	assert.False(t, settlements[0].Pending)
}
