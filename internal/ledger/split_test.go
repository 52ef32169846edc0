package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkroell/splitpot/internal/ledger"
	"github.com/dkroell/splitpot/pkg/money"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		total money.Cents
		n     int
		want  []money.Cents
	}{
		{name: "even three way", total: 9999, n: 3, want: []money.Cents{3333, 3333, 3333}},
		{name: "remainder goes to first consumers", total: 10000, n: 3, want: []money.Cents{3334, 3333, 3333}},
		{name: "two cents remainder", total: 101, n: 3, want: []money.Cents{34, 34, 33}},
		{name: "single consumer", total: 7, n: 1, want: []money.Cents{7}},
		{name: "more consumers than cents", total: 1, n: 2, want: []money.Cents{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.Split(tt.total, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitInvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		total money.Cents
		n     int
	}{
		{name: "zero consumers", total: 100, n: 0},
		{name: "negative consumers", total: 100, n: -1},
		{name: "zero amount", total: 0, n: 2},
		{name: "negative amount", total: -50, n: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Split(tt.total, tt.n)
			assert.ErrorIs(t, err, ledger.ErrInvalidArgument)
		})
	}
}

// Shares always sum back to the original amount and never differ from each
// other by more than one cent, for any positive total and consumer count.
func TestSplitExactness(t *testing.T) {
	for total := money.Cents(1); total <= 500; total++ {
		for n := 1; n <= 7; n++ {
			shares, err := ledger.Split(total, n)
			require.NoError(t, err)
			require.Len(t, shares, n)

			var sum money.Cents
			lo, hi := shares[0], shares[0]
			for _, s := range shares {
				sum += s
				lo, hi = min(lo, s), max(hi, s)
			}
			require.Equal(t, total, sum, "split(%d, %d) must sum exactly", total, n)
			require.LessOrEqual(t, hi-lo, money.Cents(1), "split(%d, %d) spread too wide", total, n)
		}
	}
}
