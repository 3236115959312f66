package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "SALESGEN_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads .env style files into the process environment.
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load returns the defaults overridden by the process environment.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose SALESGEN_* variable is set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"DIALECT":              &c.Dialect,
		"START_DATE":           &c.StartDate,
		"END_DATE":             &c.EndDate,
		"TAX_RATE":             &c.TaxRate,
		"PRICE_MIN":            &c.PriceMin,
		"PRICE_MAX":            &c.PriceMax,
		"NET_MIN":              &c.NetMin,
		"NET_MAX":              &c.NetMax,
		"OUTPUT":               &c.Output,
		"TARGET":               &c.Target,
		"DSN":                  &c.DSN,
		"SPANNER_DATABASE":     &c.SpannerDatabase,
		"GCS_CREDENTIALS_JSON": &c.GCSCredentialsJSON,
		"LOG_LEVEL":            &c.LogLevel,
		"LOG_FORMAT":           &c.LogFormat,
	}
	ints := map[string]*int{
		"SUPPLIERS":       &c.Suppliers,
		"CUSTOMERS":       &c.Customers,
		"PRODUCTS":        &c.Products,
		"SALES":           &c.Sales,
		"LINES_PER_SALE":  &c.LinesPerSale,
		"QUANTITY_MIN":    &c.QuantityMin,
		"QUANTITY_MAX":    &c.QuantityMax,
		"INVOICE_MIN":     &c.InvoiceMin,
		"INVOICE_MAX":     &c.InvoiceMax,
		"EXTENDED_INSERT": &c.ExtendedInsert,
	}
	floats := map[string]*float64{
		"COST_RATIO_MIN": &c.CostRatioMin,
		"COST_RATIO_MAX": &c.CostRatioMax,
	}
	bools := map[string]*bool{
		"VERIFY": &c.Verify,
		"DEBUG":  &c.Debug,
	}

	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = n
		}
	}
	for key, dst := range floats {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = f
		}
	}
	for key, dst := range bools {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return envError(key, v, err)
			}
			*dst = b
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError("SEED", v, err)
		}
		c.Seed = seed
	}
	return nil
}

func envError(key, value string, err error) error {
	return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, key, value, err)
}
