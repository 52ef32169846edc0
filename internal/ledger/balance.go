package ledger

import (
	"fmt"

	"github.com/dkroell/splitpot/pkg/money"
)

// ComputeBalances folds expenses and payments into per-participant net
// balances. Every known participant appears in the result, in input order,
// so participants with no activity show up at zero rather than being absent.
//
// For each expense the payer is credited the full amount and each consumer is
// debited its share from Split; the payer pays their own share only if the
// caller included them in the consumer list. For each payment the source is
// credited and the destination debited, since a payment reduces what the
// source owes and what the destination is owed.
//
// The fold is pure: caller-supplied slices are never mutated and no partial
// result escapes on error.
func ComputeBalances(participants []Participant, expenses []Expense, payments []Payment) ([]Balance, error) {
	net := make(map[int64]money.Cents, len(participants))
	order := make([]int64, 0, len(participants))
	for _, p := range participants {
		if _, seen := net[p.ID]; seen {
			continue
		}
		net[p.ID] = 0
		order = append(order, p.ID)
	}

	for _, e := range expenses {
		if e.Amount <= 0 {
			return nil, fmt.Errorf("%w: expense %d: amount must be positive", ErrInvalidArgument, e.ID)
		}
		if len(e.ConsumerIDs) == 0 {
			return nil, fmt.Errorf("%w: expense %d: consumer list is empty", ErrInvalidArgument, e.ID)
		}
		if _, ok := net[e.PayerID]; !ok {
			return nil, fmt.Errorf("%w: expense %d: payer %d", ErrUnknownParticipant, e.ID, e.PayerID)
		}
		for _, id := range e.ConsumerIDs {
			if _, ok := net[id]; !ok {
				return nil, fmt.Errorf("%w: expense %d: consumer %d", ErrUnknownParticipant, e.ID, id)
			}
		}

		shares, err := Split(e.Amount, len(e.ConsumerIDs))
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		for i, id := range e.ConsumerIDs {
			net[id] -= shares[i]
		}
		net[e.PayerID] += e.Amount
	}

	for _, p := range payments {
		if p.Amount <= 0 {
			return nil, fmt.Errorf("%w: payment %d: amount must be positive", ErrInvalidArgument, p.ID)
		}
		if _, ok := net[p.FromID]; !ok {
			return nil, fmt.Errorf("%w: payment %d: source %d", ErrUnknownParticipant, p.ID, p.FromID)
		}
		if _, ok := net[p.ToID]; !ok {
			return nil, fmt.Errorf("%w: payment %d: destination %d", ErrUnknownParticipant, p.ID, p.ToID)
		}
		net[p.FromID] += p.Amount
		net[p.ToID] -= p.Amount
	}

	// Every expense distributes exactly what it credits and every payment
	// moves an amount symmetrically, so a non-zero sum means corrupt input,
	// never something to repair silently.
	var sum money.Cents
	balances := make([]Balance, len(order))
	for i, id := range order {
		balances[i] = Balance{ParticipantID: id, Net: net[id]}
		sum += net[id]
	}
	if sum != 0 {
		return nil, fmt.Errorf("%w: balances sum to %d cents, want 0", ErrInconsistent, sum)
	}
	return balances, nil
}
