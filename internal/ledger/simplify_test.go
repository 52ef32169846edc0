package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/ledger"
	"github.com/dkroell/splitpot/pkg/money"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances []ledger.Balance
		want     []ledger.Settlement
	}{
		{
			name: "single debtor single creditor",
			balances: []ledger.Balance{
				{ParticipantID: 1, Net: 3333},
				{ParticipantID: 2, Net: 0},
				{ParticipantID: 3, Net: -3333},
			},
			want: []ledger.Settlement{
				{FromID: 3, ToID: 1, Amount: 3333},
			},
		},
		{
			name: "one creditor covered by two debtors",
			balances: []ledger.Balance{
				{ParticipantID: 1, Net: 6666},
				{ParticipantID: 2, Net: -3333},
				{ParticipantID: 3, Net: -3333},
			},
			want: []ledger.Settlement{
				{FromID: 2, ToID: 1, Amount: 3333},
				{FromID: 3, ToID: 1, Amount: 3333},
			},
		},
		{
			name: "debtor spans two creditors",
			balances: []ledger.Balance{
				{ParticipantID: 1, Net: 1000},
				{ParticipantID: 2, Net: 2500},
				{ParticipantID: 3, Net: -3500},
			},
			want: []ledger.Settlement{
				{FromID: 3, ToID: 1, Amount: 1000},
				{FromID: 3, ToID: 2, Amount: 2500},
			},
		},
		{
			name: "cursor order follows balance input order",
			balances: []ledger.Balance{
				{ParticipantID: 5, Net: -100},
				{ParticipantID: 6, Net: 300},
				{ParticipantID: 7, Net: -200},
			},
			want: []ledger.Settlement{
				{FromID: 5, ToID: 6, Amount: 100},
				{FromID: 7, ToID: 6, Amount: 200},
			},
		},
		{
			name:     "all settled",
			balances: []ledger.Balance{{ParticipantID: 1, Net: 0}, {ParticipantID: 2, Net: 0}},
			want:     nil,
		},
		{
			name:     "empty",
			balances: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.Simplify(tt.balances))
		})
	}
}

// Applying every suggested transfer against the input balances must drive
// every participant to exactly zero.
func TestSimplifySoundness(t *testing.T) {
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 6667},
		{ParticipantID: 2, Net: -3333},
		{ParticipantID: 3, Net: -3334},
		{ParticipantID: 4, Net: 1},
		{ParticipantID: 5, Net: -1},
	}

	remaining := make(map[int64]money.Cents, len(balances))
	for _, b := range balances {
		remaining[b.ParticipantID] = b.Net
	}
	for _, s := range ledger.Simplify(balances) {
		require.Positive(t, s.Amount)
		remaining[s.FromID] += s.Amount
		remaining[s.ToID] -= s.Amount
	}
	for id, net := range remaining {
		assert.Equal(t, money.Cents(0), net, "participant %d not settled", id)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 500},
		{ParticipantID: 2, Net: -500},
	}
	ledger.Simplify(balances)

	assert.Equal(t, money.Cents(500), balances[0].Net)
	assert.Equal(t, money.Cents(-500), balances[1].Net)
}

func TestSimplifyDeterministic(t *testing.T) {
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 1234},
		{ParticipantID: 2, Net: -200},
		{ParticipantID: 3, Net: -1034},
		{ParticipantID: 4, Net: 0},
	}
	assert.Equal(t, ledger.Simplify(balances), ledger.Simplify(balances))
}

// Mismatched totals should never happen given the zero-sum invariant, but
// when they do the loop stops at the exhausted side and the leftover stays
// visible to the caller rather than being invented away.
func TestSimplifyUnbalancedInputTerminates(t *testing.T) {
	balances := []ledger.Balance{
		{ParticipantID: 1, Net: 1000},
		{ParticipantID: 2, Net: -400},
	}

	settlements := ledger.Simplify(balances)
	assert.Equal(t, []ledger.Settlement{{FromID: 2, ToID: 1, Amount: 400}}, settlements)
}
