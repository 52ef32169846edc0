package ledger

import (
	"fmt"

	"github.com/dkroell/splitpot/pkg/money"
)

// Split distributes total across n shares that sum exactly to total, with no
// share differing from any other by more than one minor unit. The base share
// is floor(total/n); the first total-base*n shares carry one extra cent, in
// input order, so the distribution is stable for a given consumer ordering.
func Split(total money.Cents, n int) ([]money.Cents, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: share count must be positive, got %d", ErrInvalidArgument, n)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d cents", ErrInvalidArgument, total)
	}

	base := total / money.Cents(n)
	remainder := total - base*money.Cents(n)

	shares := make([]money.Cents, n)
	for i := range shares {
		shares[i] = base
		if money.Cents(i) < remainder {
			shares[i]++
		}
	}
	return shares, nil
}
