package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units. All arithmetic inside
// the ledger engine happens on this type so that sums of shares are exact;
// binary floating point only ever appears at the API boundary, for a single
// conversion step.
type Cents int64

// FromFloat converts a two-decimal boundary amount (e.g. a JSON number) to
// minor units, rounding half away from zero.
func FromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// FromDecimal converts a decimal amount (e.g. a NUMERIC column) to minor
// units, rounding half away from zero at two decimal places.
func FromDecimal(amount decimal.Decimal) Cents {
	return Cents(amount.Shift(2).Round(0).IntPart())
}

// Float returns the amount as a two-decimal float for JSON responses.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// Decimal returns the amount as an exact two-decimal value for storage.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Abs returns the absolute value.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}
