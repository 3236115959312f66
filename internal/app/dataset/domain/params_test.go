package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParams_Valid(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, p.Validate())
	assert.Equal(t, 730, p.DaySpan())
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"negative count", func(p *Params) { p.Sales = -1 }},
		{"products without suppliers", func(p *Params) { p.Suppliers = 0 }},
		{"sales without customers", func(p *Params) { p.Customers = 0 }},
		{"sales without products", func(p *Params) { p.Products = 0 }},
		{"zero lines per sale", func(p *Params) { p.LinesPerSale = 0 }},
		{"end before start", func(p *Params) { p.EndDate = p.StartDate.Add(-24 * time.Hour) }},
		{"negative tax", func(p *Params) { p.TaxRate = decimal.NewFromInt(-1) }},
		{"inverted price range", func(p *Params) {
			p.ProductPrice = MoneyRange{Min: NewMoneyFromCents(900), Max: NewMoneyFromCents(100)}
		}},
		{"zero price floor", func(p *Params) { p.LinePrice.Min = NewMoneyFromCents(0) }},
		{"sub-cent range", func(p *Params) { p.SaleNet.Max, _ = ParseMoney("10.001") }},
		{"zero quantity", func(p *Params) { p.Quantity.Min = 0 }},
		{"cost ratio above one", func(p *Params) { p.CostRatio.Max = 1.5 }},
		{"inverted invoice range", func(p *Params) { p.Invoice = IntRange{Min: 10, Max: 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestParams_Validate_EmptyDataset(t *testing.T) {
	p := DefaultParams()
	p.Suppliers, p.Customers, p.Products, p.Sales = 0, 0, 0, 0
	assert.NoError(t, p.Validate())
}
