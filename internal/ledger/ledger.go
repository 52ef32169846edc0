package ledger

import (
	"errors"

	"github.com/dkroell/splitpot/pkg/money"
)

// Common errors
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrInconsistent       = errors.New("ledger inconsistent")
)

// Participant is a member of an event as seen by the engine.
type Participant struct {
	ID      int64
	Name    string
	IsAdmin bool
}

// Expense is a snapshot of one shared expense: who paid, the total in minor
// units, and who consumed it. Duplicate consumer IDs are allowed; each
// occurrence counts as one additional share.
type Expense struct {
	ID          int64
	PayerID     int64
	Amount      money.Cents
	ConsumerIDs []int64
	Description string
}

// Payment is money that actually moved from one participant to another,
// independent of anything the simplifier would suggest.
type Payment struct {
	ID     int64
	FromID int64
	ToID   int64
	Amount money.Cents
}

// Balance is one participant's signed net position. Positive means the
// participant is owed money, negative means they owe.
type Balance struct {
	ParticipantID int64
	Net           money.Cents
}

// Settlement describes either a historical payment or a still-outstanding
// suggested transfer from FromID to ToID. PaymentID is set only when the
// record is backed by an actual recorded payment.
type Settlement struct {
	FromID    int64
	ToID      int64
	Amount    money.Cents
	PaymentID *int64
}
