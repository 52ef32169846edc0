package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/ledger"
	"github.com/dkroell/splitpot/pkg/money"
)

var abc = []ledger.Participant{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
	{ID: 3, Name: "Carol"},
}

func TestComputeBalancesEvenSplit(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 10, PayerID: 1, Amount: 10000, ConsumerIDs: []int64{1, 2, 3}},
	}

	balances, err := ledger.ComputeBalances(abc, expenses, nil)
	require.NoError(t, err)

	// Extra cent of the 100.00 three-way split lands on the first consumer.
	assert.Equal(t, []ledger.Balance{
		{ParticipantID: 1, Net: 6666},
		{ParticipantID: 2, Net: -3333},
		{ParticipantID: 3, Net: -3333},
	}, balances)
}

func TestComputeBalancesPaymentReducesDebt(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 10, PayerID: 1, Amount: 10000, ConsumerIDs: []int64{1, 2, 3}},
	}
	payments := []ledger.Payment{
		{ID: 20, FromID: 2, ToID: 1, Amount: 3333},
	}

	balances, err := ledger.ComputeBalances(abc, expenses, payments)
	require.NoError(t, err)

	assert.Equal(t, []ledger.Balance{
		{ParticipantID: 1, Net: 3333},
		{ParticipantID: 2, Net: 0},
		{ParticipantID: 3, Net: -3333},
	}, balances)
}

func TestComputeBalancesInactiveParticipantsAppearAtZero(t *testing.T) {
	balances, err := ledger.ComputeBalances(abc, nil, nil)
	require.NoError(t, err)

	require.Len(t, balances, 3)
	for i, b := range balances {
		assert.Equal(t, abc[i].ID, b.ParticipantID)
		assert.Equal(t, money.Cents(0), b.Net)
	}
}

func TestComputeBalancesDuplicateConsumerCountsTwice(t *testing.T) {
	expenses := []ledger.Expense{
		// Bob appears twice, so he carries two of the three shares.
		{ID: 10, PayerID: 1, Amount: 9000, ConsumerIDs: []int64{2, 2, 3}},
	}

	balances, err := ledger.ComputeBalances(abc, expenses, nil)
	require.NoError(t, err)

	assert.Equal(t, []ledger.Balance{
		{ParticipantID: 1, Net: 9000},
		{ParticipantID: 2, Net: -6000},
		{ParticipantID: 3, Net: -3000},
	}, balances)
}

func TestComputeBalancesPayerOutsideConsumers(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 10, PayerID: 1, Amount: 5000, ConsumerIDs: []int64{2, 3}},
	}

	balances, err := ledger.ComputeBalances(abc, expenses, nil)
	require.NoError(t, err)

	assert.Equal(t, []ledger.Balance{
		{ParticipantID: 1, Net: 5000},
		{ParticipantID: 2, Net: -2500},
		{ParticipantID: 3, Net: -2500},
	}, balances)
}

func TestComputeBalancesZeroSum(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 1, PayerID: 1, Amount: 10001, ConsumerIDs: []int64{1, 2, 3}},
		{ID: 2, PayerID: 2, Amount: 777, ConsumerIDs: []int64{1, 3}},
		{ID: 3, PayerID: 3, Amount: 49999, ConsumerIDs: []int64{1, 1, 2, 3}},
		{ID: 4, PayerID: 2, Amount: 5, ConsumerIDs: []int64{3}},
	}
	payments := []ledger.Payment{
		{ID: 5, FromID: 3, ToID: 1, Amount: 1200},
		{ID: 6, FromID: 2, ToID: 3, Amount: 33},
	}

	balances, err := ledger.ComputeBalances(abc, expenses, payments)
	require.NoError(t, err)

	var sum money.Cents
	for _, b := range balances {
		sum += b.Net
	}
	assert.Equal(t, money.Cents(0), sum)
}

func TestComputeBalancesErrors(t *testing.T) {
	tests := []struct {
		name     string
		expenses []ledger.Expense
		payments []ledger.Payment
		wantErr  error
	}{
		{
			name:     "unknown expense consumer",
			expenses: []ledger.Expense{{ID: 1, PayerID: 1, Amount: 100, ConsumerIDs: []int64{2, 99}}},
			wantErr:  ledger.ErrUnknownParticipant,
		},
		{
			name:     "unknown expense payer",
			expenses: []ledger.Expense{{ID: 1, PayerID: 99, Amount: 100, ConsumerIDs: []int64{1}}},
			wantErr:  ledger.ErrUnknownParticipant,
		},
		{
			name:     "unknown payment source",
			payments: []ledger.Payment{{ID: 1, FromID: 99, ToID: 1, Amount: 100}},
			wantErr:  ledger.ErrUnknownParticipant,
		},
		{
			name:     "unknown payment destination",
			payments: []ledger.Payment{{ID: 1, FromID: 1, ToID: 99, Amount: 100}},
			wantErr:  ledger.ErrUnknownParticipant,
		},
		{
			name:     "non-positive expense amount",
			expenses: []ledger.Expense{{ID: 1, PayerID: 1, Amount: 0, ConsumerIDs: []int64{2}}},
			wantErr:  ledger.ErrInvalidArgument,
		},
		{
			name:     "empty consumer list",
			expenses: []ledger.Expense{{ID: 1, PayerID: 1, Amount: 100, ConsumerIDs: nil}},
			wantErr:  ledger.ErrInvalidArgument,
		},
		{
			name:     "non-positive payment amount",
			payments: []ledger.Payment{{ID: 1, FromID: 1, ToID: 2, Amount: -5}},
			wantErr:  ledger.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ledger.ComputeBalances(abc, tt.expenses, tt.payments)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, balances, "no partial result may escape on error")
		})
	}
}

func TestComputeBalancesDeterministic(t *testing.T) {
	expenses := []ledger.Expense{
		{ID: 1, PayerID: 2, Amount: 10000, ConsumerIDs: []int64{1, 2, 3}},
		{ID: 2, PayerID: 3, Amount: 4242, ConsumerIDs: []int64{1, 2}},
	}
	payments := []ledger.Payment{{ID: 3, FromID: 1, ToID: 2, Amount: 500}}

	first, err := ledger.ComputeBalances(abc, expenses, payments)
	require.NoError(t, err)
	second, err := ledger.ComputeBalances(abc, expenses, payments)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
