package generate_dataset

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/app/dataset/fakedata"
	"github.com/light-bringer/salesgen/internal/app/dataset/repo"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/randsrc"
)

// recordingSink keeps every statement; it fails once failAt statements were accepted.
type recordingSink struct {
	stmts    []*contracts.Statement
	failAt   int
	err      error
	flushErr error
	flushed  bool
}

func (s *recordingSink) Emit(_ context.Context, stmt *contracts.Statement) error {
	if s.err != nil && len(s.stmts) == s.failAt {
		return s.err
	}
	s.stmts = append(s.stmts, stmt)
	return nil
}

func (s *recordingSink) Flush(_ context.Context) error {
	s.flushed = true
	return s.flushErr
}

func (s *recordingSink) lines() []string {
	out := make([]string, len(s.stmts))
	for i, stmt := range s.stmts {
		out[i] = stmt.SQL
	}
	return out
}

func (s *recordingSink) inserts(table string) []*contracts.Statement {
	var out []*contracts.Statement
	for _, stmt := range s.stmts {
		if stmt.Kind == contracts.KindInsert && stmt.Table == table {
			out = append(out, stmt)
		}
	}
	return out
}

// fixedText returns the same strings every time.
type fixedText struct {
	company string
}

func (f fixedText) Company() string     { return f.company }
func (f fixedText) CatchPhrase() string { return "Sistema robusto modular" }
func (f fixedText) ColorName() string   { return "Rojo" }

func smallParams() domain.Params {
	p := domain.DefaultParams()
	p.Suppliers = 5
	p.Customers = 7
	p.Products = 20
	p.Sales = 30
	return p
}

func newTestInteractor(sink contracts.Sink, seed uint64, text contracts.TextSource) *Interactor {
	rnd := randsrc.New(seed)
	if text == nil {
		text = fakedata.New(rnd)
	}
	return NewInteractor(
		repo.NewStatementRepo(dialect.SQLite),
		sink,
		rnd,
		text,
		clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		nil,
	)
}

func TestExecute_Deterministic(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}

	_, err := newTestInteractor(first, 42, nil).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)
	_, err = newTestInteractor(second, 42, nil).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)

	assert.Equal(t, first.lines(), second.lines())

	third := &recordingSink{}
	_, err = newTestInteractor(third, 43, nil).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)
	assert.NotEqual(t, first.lines(), third.lines())
}

func TestExecute_ScriptLayout(t *testing.T) {
	sink := &recordingSink{}
	summary, err := newTestInteractor(sink, 1, nil).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)

	lines := sink.lines()
	head := []string{
		"-- SQL generado para SQLite",
		"-- Habilitar la verificación de claves foráneas (importante para SQLite)",
		"PRAGMA foreign_keys = ON;",
		"",
		"BEGIN TRANSACTION;",
		"",
		"-- 1. DROP TABLES",
		`DROP TABLE IF EXISTS "ventas_detalle";`,
		`DROP TABLE IF EXISTS "ventas";`,
		`DROP TABLE IF EXISTS "productos";`,
		`DROP TABLE IF EXISTS "clientes";`,
		`DROP TABLE IF EXISTS "proveedores";`,
		"",
		"-- 2. CREATE TABLES",
		"",
	}
	require.Greater(t, len(lines), len(head))
	assert.Equal(t, head, lines[:len(head)])

	tail := []string{"COMMIT;", "", "-- Fin de la generación de datos."}
	assert.Equal(t, tail, lines[len(lines)-len(tail):])

	assert.True(t, sink.flushed)
	assert.Equal(t, len(sink.stmts), summary.Statements)
	assert.Equal(t, time.Duration(0), summary.Duration)
}

func TestExecute_StatementOrder(t *testing.T) {
	sink := &recordingSink{}
	_, err := newTestInteractor(sink, 7, nil).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)

	var drops, creates, deletes, insertTables []string
	lastKind := contracts.KindComment
	for _, stmt := range sink.stmts {
		if stmt.Kind == contracts.KindComment {
			continue
		}
		assert.GreaterOrEqual(t, int(stmt.Kind), int(lastKind), "statement kinds must not go backwards")
		lastKind = stmt.Kind

		switch stmt.Kind {
		case contracts.KindDrop:
			drops = append(drops, stmt.Table)
		case contracts.KindCreate:
			creates = append(creates, stmt.Table)
		case contracts.KindDelete:
			deletes = append(deletes, stmt.Table)
		case contracts.KindInsert:
			if len(insertTables) == 0 || insertTables[len(insertTables)-1] != stmt.Table {
				insertTables = append(insertTables, stmt.Table)
			}
		}
	}

	parentsFirst := []string{"proveedores", "clientes", "productos", "ventas", "ventas_detalle"}
	childrenFirst := []string{"ventas_detalle", "ventas", "productos", "clientes", "proveedores"}
	assert.Equal(t, childrenFirst, drops)
	assert.Equal(t, parentsFirst, creates)
	assert.Equal(t, childrenFirst, deletes)
	assert.Equal(t, parentsFirst, insertTables)
}

func TestExecute_OneOfEach(t *testing.T) {
	p := domain.DefaultParams()
	p.Suppliers, p.Customers, p.Products, p.Sales = 1, 1, 1, 1

	sink := &recordingSink{}
	summary, err := newTestInteractor(sink, 5, nil).Execute(context.Background(), &Request{Params: p})
	require.NoError(t, err)

	suppliers := sink.inserts("proveedores")
	require.Len(t, suppliers, 1)
	assert.True(t, strings.HasPrefix(suppliers[0].SQL, `INSERT INTO "proveedores" ("Prov_Id", "Prov_Nombre") VALUES (1, '`))

	products := sink.inserts("productos")
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].Values[5])

	sales := sink.inserts("ventas")
	require.Len(t, sales, 1)
	assert.Equal(t, int64(1), sales[0].Values[2])

	lines := sink.inserts("ventas_detalle")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, int64(1), line.Values[1])
		assert.Equal(t, int64(1), line.Values[2])
	}

	assert.Equal(t, int64(1), summary.Suppliers)
	assert.Equal(t, int64(len(lines)), summary.SaleLines)
}

func TestExecute_EscapesQuotes(t *testing.T) {
	sink := &recordingSink{}
	_, err := newTestInteractor(sink, 9, fixedText{company: "O'Brien"}).Execute(context.Background(), &Request{Params: smallParams()})
	require.NoError(t, err)

	suppliers := sink.inserts("proveedores")
	require.NotEmpty(t, suppliers)
	assert.Contains(t, suppliers[0].SQL, "'O''Brien'")
	assert.Equal(t, "O'Brien", suppliers[0].Values[1], "typed values stay raw")

	customers := sink.inserts("clientes")
	require.NotEmpty(t, customers)
	assert.Contains(t, customers[0].SQL, "'O''Brien'")
}

func TestExecute_IdentifiersAndReferences(t *testing.T) {
	p := smallParams()
	sink := &recordingSink{}
	summary, err := newTestInteractor(sink, 11, nil).Execute(context.Background(), &Request{Params: p})
	require.NoError(t, err)

	assertDense := func(table string, want int) {
		rows := sink.inserts(table)
		require.Len(t, rows, want, table)
		for i, row := range rows {
			assert.Equal(t, int64(i+1), row.Values[0], table)
		}
	}
	assertDense("proveedores", p.Suppliers)
	assertDense("clientes", p.Customers)
	assertDense("productos", p.Products)
	assertDense("ventas", p.Sales)

	for _, row := range sink.inserts("productos") {
		prov := row.Values[5].(int64)
		assert.True(t, prov >= 1 && prov <= int64(p.Suppliers))
		status := row.Values[3].(int64)
		assert.Contains(t, []int64{0, 1}, status)
	}

	rate := decimal.RequireFromString("0.21")
	for _, row := range sink.inserts("ventas") {
		cli := row.Values[2].(int64)
		assert.True(t, cli >= 1 && cli <= int64(p.Customers))

		date, err := time.Parse(domain.DateLayout, row.Values[1].(string))
		require.NoError(t, err)
		assert.False(t, date.Before(p.StartDate))
		assert.False(t, date.After(p.EndDate))

		invoice := row.Values[3].(int64)
		assert.True(t, invoice >= 1000 && invoice <= 9999)

		net := row.Values[4].(decimal.Decimal)
		tax := row.Values[5].(decimal.Decimal)
		total := row.Values[6].(decimal.Decimal)
		assert.True(t, tax.Equal(net.Mul(rate).Round(2)), "tax %s for net %s", tax, net)
		assert.True(t, total.Equal(net.Add(tax).Round(2)), "total %s for net %s", total, net)
	}

	perSale := make(map[int64]int)
	lastID := int64(0)
	lastSale := int64(0)
	for _, row := range sink.inserts("ventas_detalle") {
		id := row.Values[0].(int64)
		assert.Equal(t, lastID+1, id, "line ids are dense and increasing")
		lastID = id

		sale := row.Values[1].(int64)
		assert.GreaterOrEqual(t, sale, lastSale, "lines are grouped by sale")
		lastSale = sale
		perSale[sale]++

		prod := row.Values[2].(int64)
		assert.True(t, prod >= 1 && prod <= int64(p.Products))

		qty := row.Values[3].(int64)
		assert.True(t, qty >= 1 && qty <= 10)

		price := row.Values[4].(decimal.Decimal)
		cost := row.Values[5].(decimal.Decimal)
		assert.True(t, cost.LessThanOrEqual(price))
		assert.True(t, price.Equal(price.Round(2)))
		assert.True(t, cost.Equal(cost.Round(2)))
	}
	assert.Len(t, perSale, p.Sales, "every sale has lines")
	for sale, n := range perSale {
		assert.True(t, n >= 1 && n <= 2*p.LinesPerSale, "sale %d has %d lines", sale, n)
	}
	assert.Equal(t, lastID, summary.SaleLines)
}

func TestExecute_ZeroSales(t *testing.T) {
	p := smallParams()
	p.Sales = 0

	sink := &recordingSink{}
	summary, err := newTestInteractor(sink, 3, nil).Execute(context.Background(), &Request{Params: p})
	require.NoError(t, err)

	assert.Empty(t, sink.inserts("ventas"))
	assert.Empty(t, sink.inserts("ventas_detalle"))
	assert.Equal(t, int64(0), summary.SaleLines)
	assert.Len(t, sink.inserts("productos"), p.Products)
}

func TestExecute_InvalidParams(t *testing.T) {
	p := smallParams()
	p.Suppliers = 0

	sink := &recordingSink{}
	_, err := newTestInteractor(sink, 3, nil).Execute(context.Background(), &Request{Params: p})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
	assert.Empty(t, sink.stmts)
}

func TestExecute_Aborts(t *testing.T) {
	boom := errors.New("disk full")

	t.Run("sink failure", func(t *testing.T) {
		sink := &recordingSink{failAt: 40, err: boom}
		summary, err := newTestInteractor(sink, 3, nil).Execute(context.Background(), &Request{Params: smallParams()})
		assert.Nil(t, summary)
		assert.ErrorIs(t, err, domain.ErrGenerationAborted)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, sink.stmts, 40)
		assert.False(t, sink.flushed)
	})

	t.Run("flush failure", func(t *testing.T) {
		sink := &recordingSink{flushErr: boom}
		_, err := newTestInteractor(sink, 3, nil).Execute(context.Background(), &Request{Params: smallParams()})
		assert.ErrorIs(t, err, domain.ErrGenerationAborted)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sink := &recordingSink{}
		_, err := newTestInteractor(sink, 3, nil).Execute(ctx, &Request{Params: smallParams()})
		assert.ErrorIs(t, err, domain.ErrGenerationAborted)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, sink.stmts)
	})
}

func TestSummary_Rows(t *testing.T) {
	s := &Summary{Suppliers: 1, Customers: 2, Products: 3, Sales: 4, SaleLines: 5}
	assert.Equal(t, map[string]int64{
		"proveedores":    1,
		"clientes":       2,
		"productos":      3,
		"ventas":         4,
		"ventas_detalle": 5,
	}, s.Rows())
}
