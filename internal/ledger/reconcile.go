package ledger

// Reconcile builds the settlement report for an event: every recorded payment
// is emitted verbatim as a historical Settlement carrying its payment
// reference, followed by the transfers still needed to zero out the final
// balances (expenses and payments already folded together).
//
// This is a ledger-plus-residual report. Payments are never matched against a
// reconstructed suggestion, so each payment's amount is accounted for exactly
// once and the pending entries are consistent with the final balances by
// construction.
func Reconcile(balances []Balance, payments []Payment) []Settlement {
	settlements := make([]Settlement, 0, len(payments))
	for _, p := range payments {
		ref := p.ID
		settlements = append(settlements, Settlement{
			FromID:    p.FromID,
			ToID:      p.ToID,
			Amount:    p.Amount,
			PaymentID: &ref,
		})
	}
	return append(settlements, Simplify(balances)...)
}
