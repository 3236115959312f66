package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the fixed VAT rate applied to every sale (21%).
var DefaultTaxRate = decimal.New(21, -2)

// TaxCalculator is a domain service for sale tax and total calculations.
type TaxCalculator struct {
	rate decimal.Decimal
}

// NewTaxCalculator creates a new TaxCalculator for the given rate (0.21 for 21%).
func NewTaxCalculator(rate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{rate: rate}
}

// Rate returns the configured tax rate.
func (tc *TaxCalculator) Rate() decimal.Decimal {
	return tc.rate
}

// Calculate returns the rounded tax and total for a net amount.
// Formula: tax = round(net * rate, 2), total = round(net + tax, 2)
func (tc *TaxCalculator) Calculate(net Money) (tax Money, total Money) {
	tax = net.MultiplyByRate(tc.rate).Round()
	total = net.Add(tax).Round()
	return tax, total
}
