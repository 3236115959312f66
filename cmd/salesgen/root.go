package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/usecases/generate_dataset"
	"github.com/light-bringer/salesgen/internal/config"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/services"
)

// cli carries the resolved configuration and the process streams into every command.
type cli struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	clock  clock.Clock
}

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{cfg: cfg, stdout: stdout, stderr: stderr, clock: clock.NewRealClock()}

	root := &cobra.Command{
		Use:   "salesgen [command]",
		Short: "Generate a synthetic sales dataset with referential integrity",
		Long: `Generates suppliers, customers, products, sales and sale lines with dense ids
and valid foreign keys, as a SQL script, an xlsx workbook, or loaded straight into a database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&cfg.Dialect, "dialect", cfg.Dialect, "SQL dialect of the script: "+strings.Join(dialect.ScriptNames(), ", "))
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 derives one from the clock")
	f.IntVar(&cfg.Suppliers, "suppliers", cfg.Suppliers, "Number of suppliers")
	f.IntVar(&cfg.Customers, "customers", cfg.Customers, "Number of customers")
	f.IntVar(&cfg.Products, "products", cfg.Products, "Number of products")
	f.IntVar(&cfg.Sales, "sales", cfg.Sales, "Number of sales")
	f.IntVar(&cfg.LinesPerSale, "lines-per-sale", cfg.LinesPerSale, "Average lines per sale; each sale gets 1 to twice this many")
	f.StringVar(&cfg.StartDate, "start-date", cfg.StartDate, "First sale date (YYYY-MM-DD)")
	f.StringVar(&cfg.EndDate, "end-date", cfg.EndDate, "Last sale date (YYYY-MM-DD)")
	f.StringVar(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "Tax rate applied to sale net amounts")
	f.StringVar(&cfg.PriceMin, "price-min", cfg.PriceMin, "Minimum product and line price")
	f.StringVar(&cfg.PriceMax, "price-max", cfg.PriceMax, "Maximum product and line price")
	f.StringVar(&cfg.NetMin, "net-min", cfg.NetMin, "Minimum sale net amount")
	f.StringVar(&cfg.NetMax, "net-max", cfg.NetMax, "Maximum sale net amount")
	f.IntVar(&cfg.QuantityMin, "quantity-min", cfg.QuantityMin, "Minimum line quantity")
	f.IntVar(&cfg.QuantityMax, "quantity-max", cfg.QuantityMax, "Maximum line quantity")
	f.Float64Var(&cfg.CostRatioMin, "cost-ratio-min", cfg.CostRatioMin, "Minimum cost as a fraction of line price")
	f.Float64Var(&cfg.CostRatioMax, "cost-ratio-max", cfg.CostRatioMax, "Maximum cost as a fraction of line price")
	f.IntVar(&cfg.InvoiceMin, "invoice-min", cfg.InvoiceMin, "Lowest invoice number")
	f.IntVar(&cfg.InvoiceMax, "invoice-max", cfg.InvoiceMax, "Highest invoice number")
	f.StringVar(&cfg.GCSCredentialsJSON, "gcs-credentials-json", cfg.GCSCredentialsJSON, "Service account JSON for gs:// outputs (default: application credentials)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Dump the resolved parameters to stderr")

	root.AddCommand(
		c.generateCmd(),
		c.exportCmd(),
		c.loadCmd(),
		c.migrateCmd(),
	)
	return root
}

// setup validates the configuration and wires the services for one command.
func (c *cli) setup() (*services.ServiceOptions, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(c.stderr, c.cfg.LogLevel, c.cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	opts := services.NewServiceOptions(c.cfg, logger, c.clock)

	if c.cfg.Debug {
		params, err := opts.Params()
		if err != nil {
			return nil, err
		}
		spew.Fdump(c.stderr, params)
	}
	return opts, nil
}

// generate runs one dataset generation into sink and logs the summary.
func (c *cli) generate(ctx context.Context, opts *services.ServiceOptions, d *dialect.Dialect, sink contracts.Sink) (*generate_dataset.Summary, error) {
	params, err := opts.Params()
	if err != nil {
		return nil, err
	}

	summary, err := opts.GenerateDataset(d, sink).Execute(ctx, &generate_dataset.Request{Params: params})
	if err != nil {
		config.LogError(opts.Logger, "salesgen", "generate", d.Name(), nil, err)
		return nil, err
	}

	opts.Logger.WithFields(logrus.Fields{
		"suppliers":  summary.Suppliers,
		"customers":  summary.Customers,
		"products":   summary.Products,
		"sales":      summary.Sales,
		"sale_lines": summary.SaleLines,
		"statements": summary.Statements,
		"duration":   summary.Duration.String(),
	}).Info("dataset generated")
	return summary, nil
}

// signalContext cancels on interrupt so a run aborts cleanly.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
