package ledger

// Simplify turns net balances into an ordered list of transfers that drives
// every balance to exactly zero. Participants are partitioned into debtors
// (net < 0) and creditors (net > 0), both keeping their balance input order,
// and two cursors walk the lists: each step transfers the smaller of the two
// remaining amounts from the current debtor to the current creditor, then
// advances whichever side reached zero. Integer cents make the zero test
// exact, so no epsilon is needed.
//
// The result is deterministic for identical input. It is a greedy heuristic:
// the transaction count is small in practice but not guaranteed to be the
// global minimum.
func Simplify(balances []Balance) []Settlement {
	var debtors, creditors []Balance
	for _, b := range balances {
		switch {
		case b.Net < 0:
			debtors = append(debtors, Balance{ParticipantID: b.ParticipantID, Net: -b.Net})
		case b.Net > 0:
			creditors = append(creditors, b)
		}
	}

	var settlements []Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].Net, creditors[j].Net)
		settlements = append(settlements, Settlement{
			FromID: debtors[i].ParticipantID,
			ToID:   creditors[j].ParticipantID,
			Amount: amount,
		})

		debtors[i].Net -= amount
		creditors[j].Net -= amount
		if debtors[i].Net == 0 {
			i++
		}
		if creditors[j].Net == 0 {
			j++
		}
	}
	// If total debt and total credit differ the loop stops at the shorter
	// side; the leftover stays visible in the caller's balances instead of
	// being dropped here.
	return settlements
}
