package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the textual form of sale dates ("2023-01-31").
const DateLayout = "2006-01-02"

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int
	Max int
}

// MoneyRange is an inclusive range of amounts with cent granularity.
type MoneyRange struct {
	Min Money
	Max Money
}

// RatioRange is a half-open range [Min, Max) of plain factors.
type RatioRange struct {
	Min float64
	Max float64
}

// Params holds every knob of a generation run.
type Params struct {
	Suppliers    int
	Customers    int
	Products     int
	Sales        int
	LinesPerSale int // average; actual lines per sale are uniform in [1, 2*LinesPerSale]

	StartDate time.Time
	EndDate   time.Time

	TaxRate decimal.Decimal

	ProductPrice MoneyRange
	SaleNet      MoneyRange
	LinePrice    MoneyRange
	Quantity     IntRange
	CostRatio    RatioRange
	Invoice      IntRange
}

// DefaultParams returns the standard dataset shape.
func DefaultParams() Params {
	return Params{
		Suppliers:    50,
		Customers:    200,
		Products:     1000,
		Sales:        5000,
		LinesPerSale: 3,
		StartDate:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		TaxRate:      DefaultTaxRate,
		ProductPrice: MoneyRange{Min: NewMoneyFromCents(500), Max: NewMoneyFromCents(50000)},
		SaleNet:      MoneyRange{Min: NewMoneyFromCents(1000), Max: NewMoneyFromCents(200000)},
		LinePrice:    MoneyRange{Min: NewMoneyFromCents(500), Max: NewMoneyFromCents(50000)},
		Quantity:     IntRange{Min: 1, Max: 10},
		CostRatio:    RatioRange{Min: 0.5, Max: 0.8},
		Invoice:      IntRange{Min: 1000, Max: 9999},
	}
}

// DaySpan returns the number of whole days between StartDate and EndDate.
func (p Params) DaySpan() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

// Validate checks cross-field constraints. Errors wrap ErrInvalidParams.
func (p Params) Validate() error {
	if p.Suppliers < 0 || p.Customers < 0 || p.Products < 0 || p.Sales < 0 {
		return fmt.Errorf("%w: counts cannot be negative", ErrInvalidParams)
	}
	if p.Products > 0 && p.Suppliers == 0 {
		return fmt.Errorf("%w: products need at least one supplier", ErrInvalidParams)
	}
	if p.Sales > 0 && p.Customers == 0 {
		return fmt.Errorf("%w: sales need at least one customer", ErrInvalidParams)
	}
	if p.Sales > 0 && p.Products == 0 {
		return fmt.Errorf("%w: sale lines need at least one product", ErrInvalidParams)
	}
	if p.LinesPerSale < 1 {
		return fmt.Errorf("%w: lines per sale must be at least 1", ErrInvalidParams)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidParams, p.EndDate.Format(DateLayout), p.StartDate.Format(DateLayout))
	}
	if p.TaxRate.IsNegative() {
		return fmt.Errorf("%w: tax rate cannot be negative", ErrInvalidParams)
	}
	for name, r := range map[string]MoneyRange{
		"product price": p.ProductPrice,
		"sale net":      p.SaleNet,
		"line price":    p.LinePrice,
	} {
		if !r.Min.GreaterThan(NewMoneyFromCents(0)) || r.Min.GreaterThan(r.Max) {
			return fmt.Errorf("%w: %s range [%s, %s] is invalid", ErrInvalidParams, name, r.Min, r.Max)
		}
		if !r.Min.IsRounded() || !r.Max.IsRounded() {
			return fmt.Errorf("%w: %s range must use cents", ErrInvalidParams, name)
		}
	}
	if p.Quantity.Min < 1 || p.Quantity.Min > p.Quantity.Max {
		return fmt.Errorf("%w: quantity range [%d, %d] is invalid", ErrInvalidParams, p.Quantity.Min, p.Quantity.Max)
	}
	if p.CostRatio.Min <= 0 || p.CostRatio.Max > 1 || p.CostRatio.Min > p.CostRatio.Max {
		return fmt.Errorf("%w: cost ratio range [%g, %g] must lie in (0, 1]", ErrInvalidParams, p.CostRatio.Min, p.CostRatio.Max)
	}
	if p.Invoice.Min < 0 || p.Invoice.Min > p.Invoice.Max {
		return fmt.Errorf("%w: invoice range [%d, %d] is invalid", ErrInvalidParams, p.Invoice.Min, p.Invoice.Max)
	}
	return nil
}
