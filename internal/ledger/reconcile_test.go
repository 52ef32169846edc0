package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/ledger"
)

func TestReconcilePartialPayment(t *testing.T) {
	// Carol owed Alice 33.33 and has paid 10.00 of it.
	payments := []ledger.Payment{
		{ID: 7, FromID: 3, ToID: 1, Amount: 1000},
	}
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 2333},
		{ParticipantID: 3, Net: -2333},
	}

	settlements := ledger.Reconcile(balances, payments)
	require.Len(t, settlements, 2)

	// The historical payment keeps its reference.
	require.NotNil(t, settlements[0].PaymentID)
	assert.Equal(t, int64(7), *settlements[0].PaymentID)
	assert.Equal(t, ledger.Settlement{FromID: 3, ToID: 1, Amount: 1000, PaymentID: settlements[0].PaymentID}, settlements[0])

	// The remainder is suggested with no reference.
	assert.Equal(t, ledger.Settlement{FromID: 3, ToID: 1, Amount: 2333}, settlements[1])
}

func TestReconcileFullySettled(t *testing.T) {
	payments := []ledger.Payment{
		{ID: 1, FromID: 2, ToID: 1, Amount: 3333},
		{ID: 2, FromID: 3, ToID: 1, Amount: 3333},
	}
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 0},
		{ParticipantID: 2, Net: 0},
		{ParticipantID: 3, Net: 0},
	}

	settlements := ledger.Reconcile(balances, payments)
	require.Len(t, settlements, 2)
	for i, s := range settlements {
		require.NotNil(t, s.PaymentID, "entry %d should reference its payment", i)
		assert.Equal(t, payments[i].ID, *s.PaymentID)
		assert.Equal(t, payments[i].Amount, s.Amount)
	}
}

func TestReconcileNoPayments(t *testing.T) {
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 6666},
		{ParticipantID: 2, Net: -3333},
		{ParticipantID: 3, Net: -3333},
	}

	settlements := ledger.Reconcile(balances, nil)
	assert.Equal(t, []ledger.Settlement{
		{FromID: 2, ToID: 1, Amount: 3333},
		{FromID: 3, ToID: 1, Amount: 3333},
	}, settlements)
}

// Each payment appears exactly once, and the pending entries alone zero out
// the final balances.
func TestReconcileAccountsEveryPaymentOnce(t *testing.T) {
	payments := []ledger.Payment{
		{ID: 1, FromID: 2, ToID: 1, Amount: 500},
		{ID: 2, FromID: 2, ToID: 1, Amount: 250},
		{ID: 3, FromID: 3, ToID: 2, Amount: 100},
	}
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 1250},
		{ParticipantID: 2, Net: -1150},
		{ParticipantID: 3, Net: -100},
	}

	settlements := ledger.Reconcile(balances, payments)

	seen := make(map[int64]int)
	pendingNet := map[int64]int64{1: 1250, 2: -1150, 3: -100}
	for _, s := range settlements {
		if s.PaymentID != nil {
			seen[*s.PaymentID]++
			continue
		}
		pendingNet[s.FromID] += int64(s.Amount)
		pendingNet[s.ToID] -= int64(s.Amount)
	}

	for _, p := range payments {
		assert.Equal(t, 1, seen[p.ID], "payment %d must appear exactly once", p.ID)
	}
	for id, net := range pendingNet {
		assert.Zero(t, net, "participant %d not settled by pending entries", id)
	}
}

func TestReconcileDeterministic(t *testing.T) {
	payments := []ledger.Payment{{ID: 1, FromID: 2, ToID: 1, Amount: 100}}
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 900},
		{ParticipantID: 2, Net: -900},
	}
	assert.Equal(t, ledger.Reconcile(balances, payments), ledger.Reconcile(balances, payments))
}
