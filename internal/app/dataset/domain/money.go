package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every emitted amount is rounded to.
const MoneyScale = 2

// Money represents a monetary value with exact decimal arithmetic.
// Values are kept unrounded until Round is called so that chained
// calculations (net * rate) do not accumulate rounding error.
type Money struct {
	d decimal.Decimal
}

// NewMoneyFromCents creates a Money instance from an integer amount of cents.
// Example: NewMoneyFromCents(249900) represents 2499.00
func NewMoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -MoneyScale)}
}

// NewMoneyFromDecimal wraps an existing decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

// ParseMoney parses a textual amount such as "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

// Add adds two Money values and returns a new Money instance.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// MultiplyByRate multiplies the amount by a plain decimal factor (tax rate, cost ratio).
func (m Money) MultiplyByRate(rate decimal.Decimal) Money {
	return Money{d: m.d.Mul(rate)}
}

// Round rounds half away from zero to MoneyScale places.
func (m Money) Round() Money {
	return Money{d: m.d.Round(MoneyScale)}
}

// IsRounded reports whether the value already has at most MoneyScale decimals.
func (m Money) IsRounded() bool {
	return m.d.Equal(m.d.Round(MoneyScale))
}

// IsNegative returns true if the money value is negative.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsZero returns true if the money value is zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// GreaterThan returns true if this Money value is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.d.GreaterThan(other.d)
}

// Equals returns true if this Money value equals another.
func (m Money) Equals(other Money) bool {
	return m.d.Equal(other.d)
}

// Decimal exposes the underlying value for sinks that need a typed number.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Float64 returns an approximate float64 representation (for spreadsheet and REAL columns only).
func (m Money) Float64() float64 {
	return m.d.InexactFloat64()
}

// String returns the amount with exactly two decimals, e.g. "12.50".
func (m Money) String() string {
	return m.d.StringFixed(MoneyScale)
}
