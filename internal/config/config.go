// Package config resolves run configuration from defaults, the environment
// (SALESGEN_* variables, optionally from a .env file) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
)

// ErrInvalidConfig is returned when a value cannot be parsed or fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of a salesgen invocation.
type Config struct {
	Dialect string `validate:"required,oneof=sqlite mysql postgres"`
	Seed    uint64

	Suppliers    int `validate:"gte=0"`
	Customers    int `validate:"gte=0"`
	Products     int `validate:"gte=0"`
	Sales        int `validate:"gte=0"`
	LinesPerSale int `validate:"gte=1"`

	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`

	TaxRate  string `validate:"required,numeric"`
	PriceMin string `validate:"required,numeric"`
	PriceMax string `validate:"required,numeric"`
	NetMin   string `validate:"required,numeric"`
	NetMax   string `validate:"required,numeric"`

	QuantityMin  int     `validate:"gte=1"`
	QuantityMax  int     `validate:"gtefield=QuantityMin"`
	CostRatioMin float64 `validate:"gt=0,lte=1"`
	CostRatioMax float64 `validate:"gtefield=CostRatioMin,lte=1"`
	InvoiceMin   int     `validate:"gte=0"`
	InvoiceMax   int     `validate:"gtefield=InvoiceMin"`

	Output         string
	ExtendedInsert int `validate:"gte=0"`

	Target          string `validate:"omitempty,oneof=sqlite mysql postgres spanner"`
	DSN             string
	SpannerDatabase string
	Verify          bool

	GCSCredentialsJSON string

	LogLevel  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"required,oneof=text json"`
	Debug     bool
}

// Default returns the configuration that produces the default dataset: 50 suppliers, 200 customers, 1000 products, 5000 sales.
func Default() *Config {
	p := domain.DefaultParams()
	return &Config{
		Dialect:      "sqlite",
		Suppliers:    p.Suppliers,
		Customers:    p.Customers,
		Products:     p.Products,
		Sales:        p.Sales,
		LinesPerSale: p.LinesPerSale,
		StartDate:    p.StartDate.Format(domain.DateLayout),
		EndDate:      p.EndDate.Format(domain.DateLayout),
		TaxRate:      p.TaxRate.String(),
		PriceMin:     p.ProductPrice.Min.String(),
		PriceMax:     p.ProductPrice.Max.String(),
		NetMin:       p.SaleNet.Min.String(),
		NetMax:       p.SaleNet.Max.String(),
		QuantityMin:  p.Quantity.Min,
		QuantityMax:  p.Quantity.Max,
		CostRatioMin: p.CostRatio.Min,
		CostRatioMax: p.CostRatio.Max,
		InvoiceMin:   p.Invoice.Min,
		InvoiceMax:   p.Invoice.Max,
		Output:       "-",

		SpannerDatabase: "projects/test-project/instances/dev-instance/databases/salesgen-db",

		LogLevel:  "info",
		LogFormat: "text",
	}
}

var validate = validator.New()

// Validate runs the struct tag rules. Field failures are listed in the error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	fields := ValidationErrors(verrs)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " (" + fields[name] + ")"
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(parts, ", "))
}

// ValidationErrors maps each failing field to the rule it broke.
func ValidationErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		out[ve.Field()] = ve.Tag()
	}
	return out
}

// ToParams converts the validated configuration to generation parameters.
// Cross-field checks are left to domain.Params.Validate.
func (c *Config) ToParams() (domain.Params, error) {
	p := domain.DefaultParams()
	p.Suppliers = c.Suppliers
	p.Customers = c.Customers
	p.Products = c.Products
	p.Sales = c.Sales
	p.LinesPerSale = c.LinesPerSale

	var err error
	if p.StartDate, err = parseDate("start date", c.StartDate); err != nil {
		return domain.Params{}, err
	}
	if p.EndDate, err = parseDate("end date", c.EndDate); err != nil {
		return domain.Params{}, err
	}
	if p.TaxRate, err = parseDecimal("tax rate", c.TaxRate); err != nil {
		return domain.Params{}, err
	}

	priceMin, err := parseMoney("price min", c.PriceMin)
	if err != nil {
		return domain.Params{}, err
	}
	priceMax, err := parseMoney("price max", c.PriceMax)
	if err != nil {
		return domain.Params{}, err
	}
	netMin, err := parseMoney("net min", c.NetMin)
	if err != nil {
		return domain.Params{}, err
	}
	netMax, err := parseMoney("net max", c.NetMax)
	if err != nil {
		return domain.Params{}, err
	}

	// Line prices are drawn from the same range as product list prices.
	p.ProductPrice = domain.MoneyRange{Min: priceMin, Max: priceMax}
	p.LinePrice = domain.MoneyRange{Min: priceMin, Max: priceMax}
	p.SaleNet = domain.MoneyRange{Min: netMin, Max: netMax}
	p.Quantity = domain.IntRange{Min: c.QuantityMin, Max: c.QuantityMax}
	p.CostRatio = domain.RatioRange{Min: c.CostRatioMin, Max: c.CostRatioMax}
	p.Invoice = domain.IntRange{Min: c.InvoiceMin, Max: c.InvoiceMax}

	if err := p.Validate(); err != nil {
		return domain.Params{}, err
	}
	return p, nil
}

func parseDate(name, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, name, s, err)
	}
	return t, nil
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, name, s, err)
	}
	return d, nil
}

// parseMoney accepts amounts with at most two decimals.
func parseMoney(name, s string) (domain.Money, error) {
	m, err := domain.ParseMoney(strings.TrimSpace(s))
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, name, s, err)
	}
	if !m.IsRounded() {
		return domain.Money{}, fmt.Errorf("%w: %s %q has more than %d decimals", ErrInvalidConfig, name, s, domain.MoneyScale)
	}
	return m, nil
}
