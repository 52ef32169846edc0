package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dkroell/splitpot/pkg/money"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   money.Cents
	}{
		{name: "whole amount", amount: 100.00, want: 10000},
		{name: "two decimals", amount: 33.33, want: 3333},
		{name: "rounds half away from zero", amount: 0.125, want: 13},
		{name: "rounds negative half away from zero", amount: -0.125, want: -13},
		{name: "rounds down below half", amount: 10.004, want: 1000},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FromFloat(tt.amount))
		})
	}
}

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   money.Cents
	}{
		{name: "two decimals", amount: "12.34", want: 1234},
		{name: "no decimals", amount: "7", want: 700},
		{name: "rounds half away from zero", amount: "0.005", want: 1},
		{name: "rounds negative half away from zero", amount: "-0.005", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, money.FromDecimal(d))
		})
	}
}

func TestRoundTrips(t *testing.T) {
	for _, c := range []money.Cents{0, 1, -1, 3333, -6666, 1234567} {
		assert.Equal(t, c, money.FromFloat(c.Float()))
		assert.Equal(t, c, money.FromDecimal(c.Decimal()))
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, money.Cents(42), money.Cents(-42).Abs())
	assert.Equal(t, money.Cents(42), money.Cents(42).Abs())
	assert.Equal(t, money.Cents(0), money.Cents(0).Abs())
}
