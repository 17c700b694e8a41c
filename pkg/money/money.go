package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDecimal  = errors.New("invalid decimal amount")
	ErrNotPositive     = errors.New("amount must be greater than zero")
	ErrNegativeDecimal = errors.New("amount must not be negative")
)

// Parse converts a decimal string into an exact decimal value. Monetary
// amounts never pass through a binary float.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidDecimal
	}
	return d, nil
}

// ParsePositive parses an amount that must be strictly greater than zero.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrNotPositive
	}
	return d, nil
}

// ParseNonNegative parses an amount that may be zero but not negative.
func ParseNonNegative(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeDecimal
	}
	return d, nil
}

// Percentage returns spent/cap*100 rounded to two decimal places, as a
// display string. A zero cap yields "0.00" rather than dividing by zero.
func Percentage(spent, cap decimal.Decimal) string {
	if cap.IsZero() {
		return "0.00"
	}
	return spent.Div(cap).Mul(decimal.NewFromInt(100)).StringFixed(2)
}
