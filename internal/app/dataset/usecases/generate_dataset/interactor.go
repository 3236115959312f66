package generate_dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/models"
	"github.com/light-bringer/salesgen/internal/models/m_customer"
	"github.com/light-bringer/salesgen/internal/models/m_product"
	"github.com/light-bringer/salesgen/internal/models/m_sale"
	"github.com/light-bringer/salesgen/internal/models/m_sale_line"
	"github.com/light-bringer/salesgen/internal/models/m_supplier"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Request contains the parameters of one generation run.
type Request struct {
	Params domain.Params
}

// Summary reports what a run emitted.
type Summary struct {
	Suppliers  int64
	Customers  int64
	Products   int64
	Sales      int64
	SaleLines  int64
	Statements int
	Duration   time.Duration
}

// Rows returns the inserted row count per table name.
func (s *Summary) Rows() map[string]int64 {
	return map[string]int64{
		m_supplier.TableName:  s.Suppliers,
		m_customer.TableName:  s.Customers,
		m_product.TableName:   s.Products,
		m_sale.TableName:      s.Sales,
		m_sale_line.TableName: s.SaleLines,
	}
}

// Interactor handles the generate dataset use case.
type Interactor struct {
	repo   contracts.StatementRepository
	sink   contracts.Sink
	rnd    contracts.Random
	text   contracts.TextSource
	clock  clock.Clock
	logger *logrus.Entry
}

// NewInteractor creates a new generate dataset interactor.
func NewInteractor(
	repo contracts.StatementRepository,
	sink contracts.Sink,
	rnd contracts.Random,
	text contracts.TextSource,
	clk clock.Clock,
	logger *logrus.Entry,
) *Interactor {
	return &Interactor{
		repo:   repo,
		sink:   sink,
		rnd:    rnd,
		text:   text,
		clock:  clk,
		logger: logger,
	}
}

// run carries the state of one Execute call. Only identifier pools survive
// between tables; entities are rendered and dropped immediately.
type run struct {
	ctx     context.Context
	params  domain.Params
	calc    *domain.TaxCalculator
	summary *Summary

	suppliers *domain.IDPool
	customers *domain.IDPool
	products  *domain.IDPool
	sales     *domain.IDPool
	lines     *domain.IDPool
}

// Execute emits the full script into the sink: header, DDL, cleanup, rows, commit.
// Any sink failure or cancellation aborts the run with domain.ErrGenerationAborted.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Summary, error) {
	// 1. Validate request
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	tables, err := schema.Order(models.Tables())
	if err != nil {
		return nil, fmt.Errorf("failed to order tables: %w", err)
	}

	started := i.clock.Now()
	r := &run{
		ctx:       ctx,
		params:    req.Params,
		calc:      domain.NewTaxCalculator(req.Params.TaxRate),
		summary:   &Summary{},
		suppliers: domain.NewIDPool(m_supplier.TableName),
		customers: domain.NewIDPool(m_customer.TableName),
		products:  domain.NewIDPool(m_product.TableName),
		sales:     domain.NewIDPool(m_sale.TableName),
		lines:     domain.NewIDPool(m_sale_line.TableName),
	}

	// 2. Header and transaction
	if err := i.header(r); err != nil {
		return nil, err
	}

	// 3. Schema: drop children first, create parents first, then clear
	if err := i.ddl(r, tables); err != nil {
		return nil, err
	}

	// 4. Rows, parents before children
	steps := []struct {
		table string
		fill  func(*run) error
	}{
		{m_supplier.TableName, i.insertSuppliers},
		{m_customer.TableName, i.insertCustomers},
		{m_product.TableName, i.insertProducts},
		{m_sale.TableName, i.insertSales},
		{m_sale_line.TableName, i.insertSaleLines},
	}
	for n, step := range steps {
		if err := i.comment(r, fmt.Sprintf("-- 4.%d. Insertando datos en '%s'", n+1, step.table)); err != nil {
			return nil, err
		}
		if err := step.fill(r); err != nil {
			return nil, err
		}
		if err := i.blank(r); err != nil {
			return nil, err
		}
		i.log().WithField("table", step.table).Debug("table rows emitted")
	}

	// 5. Commit and trailer
	if commit := i.repo.Commit(); commit != nil {
		if err := i.emit(r, commit); err != nil {
			return nil, err
		}
		if err := i.blank(r); err != nil {
			return nil, err
		}
	}
	if err := i.comment(r, "-- Fin de la generación de datos."); err != nil {
		return nil, err
	}

	if err := i.sink.Flush(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to flush sink: %w", domain.ErrGenerationAborted, err)
	}

	r.summary.Suppliers = r.suppliers.Count()
	r.summary.Customers = r.customers.Count()
	r.summary.Products = r.products.Count()
	r.summary.Sales = r.sales.Count()
	r.summary.SaleLines = r.lines.Count()
	r.summary.Duration = i.clock.Since(started)

	return r.summary, nil
}

func (i *Interactor) header(r *run) error {
	if err := i.comment(r, "-- SQL generado para "+i.repo.Title()); err != nil {
		return err
	}
	if pragma := i.repo.Pragma(); pragma != nil {
		comment := fmt.Sprintf("-- Habilitar la verificación de claves foráneas (importante para %s)", i.repo.Title())
		if err := i.comment(r, comment); err != nil {
			return err
		}
		if err := i.emit(r, pragma); err != nil {
			return err
		}
	}
	if err := i.blank(r); err != nil {
		return err
	}

	if begin := i.repo.Begin(); begin != nil {
		if err := i.emit(r, begin); err != nil {
			return err
		}
		if err := i.blank(r); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) ddl(r *run, tables []schema.Table) error {
	reversed := schema.Reverse(tables)

	if err := i.comment(r, "-- 1. DROP TABLES"); err != nil {
		return err
	}
	for _, t := range reversed {
		if err := i.emit(r, i.repo.DropStmt(t)); err != nil {
			return err
		}
	}
	if err := i.blank(r); err != nil {
		return err
	}

	if err := i.comment(r, "-- 2. CREATE TABLES"); err != nil {
		return err
	}
	if err := i.blank(r); err != nil {
		return err
	}
	for _, t := range tables {
		if err := i.emit(r, i.repo.CreateStmt(t)); err != nil {
			return err
		}
		if err := i.blank(r); err != nil {
			return err
		}
	}
	if err := i.blank(r); err != nil {
		return err
	}

	if err := i.comment(r, "-- 3. DELETE FROM"); err != nil {
		return err
	}
	for _, t := range reversed {
		if err := i.emit(r, i.repo.DeleteStmt(t)); err != nil {
			return err
		}
	}
	return i.blank(r)
}

func (i *Interactor) insertSuppliers(r *run) error {
	for n := 0; n < r.params.Suppliers; n++ {
		supplier, err := domain.NewSupplier(r.suppliers.Next(), i.text.Company())
		if err != nil {
			return fmt.Errorf("failed to create supplier: %w", err)
		}
		stmt, err := i.repo.SupplierInsert(supplier)
		if err != nil {
			return err
		}
		if err := i.emit(r, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) insertCustomers(r *run) error {
	for n := 0; n < r.params.Customers; n++ {
		customer, err := domain.NewCustomer(r.customers.Next(), i.text.Company())
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		stmt, err := i.repo.CustomerInsert(customer)
		if err != nil {
			return err
		}
		if err := i.emit(r, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) insertProducts(r *run) error {
	for n := 0; n < r.params.Products; n++ {
		id := r.products.Next()
		description := i.text.CatchPhrase()
		color := i.text.ColorName()
		status := int64(i.rnd.IntN(2))
		price := i.money(r.params.ProductPrice)
		supplierID, err := r.suppliers.Sample(i.rnd)
		if err != nil {
			return fmt.Errorf("failed to pick supplier for product %d: %w", id, err)
		}

		product, err := domain.NewProduct(id, description, color, status, price, supplierID)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		stmt, err := i.repo.ProductInsert(product)
		if err != nil {
			return err
		}
		if err := i.emit(r, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interactor) insertSales(r *run) error {
	span := r.params.DaySpan()
	for n := 0; n < r.params.Sales; n++ {
		id := r.sales.Next()
		date := r.params.StartDate.AddDate(0, 0, i.rnd.IntN(span+1))
		customerID, err := r.customers.Sample(i.rnd)
		if err != nil {
			return fmt.Errorf("failed to pick customer for sale %d: %w", id, err)
		}
		invoice := int64(i.intBetween(r.params.Invoice))
		net := i.money(r.params.SaleNet)

		sale, err := domain.NewSale(id, date, customerID, invoice, net, r.calc)
		if err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}
		stmt, err := i.repo.SaleInsert(sale)
		if err != nil {
			return err
		}
		if err := i.emit(r, stmt); err != nil {
			return err
		}
	}
	return nil
}

// insertSaleLines walks every sale in id order and gives it between 1 and
// 2*LinesPerSale lines. Line ids keep increasing across sales.
func (i *Interactor) insertSaleLines(r *run) error {
	maxLines := 2 * r.params.LinesPerSale
	for saleID := int64(1); saleID <= r.sales.Count(); saleID++ {
		count := 1 + i.rnd.IntN(maxLines)
		for n := 0; n < count; n++ {
			id := r.lines.Next()
			productID, err := r.products.Sample(i.rnd)
			if err != nil {
				return fmt.Errorf("failed to pick product for sale line %d: %w", id, err)
			}
			quantity := int64(i.intBetween(r.params.Quantity))
			price := i.money(r.params.LinePrice)
			cost := price.MultiplyByRate(i.ratio(r.params.CostRatio)).Round()

			line, err := domain.NewSaleLine(id, saleID, productID, quantity, price, cost)
			if err != nil {
				return fmt.Errorf("failed to create sale line: %w", err)
			}
			stmt, err := i.repo.SaleLineInsert(line)
			if err != nil {
				return err
			}
			if err := i.emit(r, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

// money draws a uniform amount in whole cents from the inclusive range.
func (i *Interactor) money(rng domain.MoneyRange) domain.Money {
	lo := rng.Min.Decimal().Shift(domain.MoneyScale).IntPart()
	hi := rng.Max.Decimal().Shift(domain.MoneyScale).IntPart()
	return domain.NewMoneyFromCents(lo + int64(i.rnd.IntN(int(hi-lo+1))))
}

func (i *Interactor) intBetween(rng domain.IntRange) int {
	return rng.Min + i.rnd.IntN(rng.Max-rng.Min+1)
}

func (i *Interactor) ratio(rng domain.RatioRange) decimal.Decimal {
	return decimal.NewFromFloat(rng.Min + i.rnd.Float64()*(rng.Max-rng.Min))
}

func (i *Interactor) comment(r *run, text string) error {
	return i.emit(r, &contracts.Statement{Kind: contracts.KindComment, SQL: text})
}

func (i *Interactor) blank(r *run) error {
	return i.emit(r, &contracts.Statement{Kind: contracts.KindComment})
}

// emit forwards one statement and turns any failure into ErrGenerationAborted.
func (i *Interactor) emit(r *run, stmt *contracts.Statement) error {
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrGenerationAborted, err)
	}
	if err := i.sink.Emit(r.ctx, stmt); err != nil {
		return fmt.Errorf("%w: %s statement for %q: %w", domain.ErrGenerationAborted, stmt.Kind, stmt.Table, err)
	}
	r.summary.Statements++
	return nil
}

func (i *Interactor) log() *logrus.Entry {
	if i.logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return i.logger
}
