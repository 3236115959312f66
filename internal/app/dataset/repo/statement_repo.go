package repo

import (
	"fmt"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/models/m_customer"
	"github.com/light-bringer/salesgen/internal/models/m_product"
	"github.com/light-bringer/salesgen/internal/models/m_sale"
	"github.com/light-bringer/salesgen/internal/models/m_sale_line"
	"github.com/light-bringer/salesgen/internal/models/m_supplier"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/query"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// row is satisfied by every model Data type.
type row interface {
	Columns() []string
	Values() []interface{}
}

// StatementRepo implements StatementRepository for a SQL dialect.
type StatementRepo struct {
	dialect *dialect.Dialect
}

// NewStatementRepo creates a new StatementRepo.
func NewStatementRepo(d *dialect.Dialect) contracts.StatementRepository {
	return &StatementRepo{dialect: d}
}

// DialectName returns the target dialect name.
func (r *StatementRepo) DialectName() string {
	return r.dialect.Name()
}

// Title returns the dialect display name.
func (r *StatementRepo) Title() string {
	return r.dialect.Title()
}

// Pragma returns the foreign key toggle, or nil when the dialect has none.
func (r *StatementRepo) Pragma() *contracts.Statement {
	return r.marker(contracts.KindPragma, r.dialect.Pragma())
}

// Begin returns the transaction-begin marker, or nil when the dialect has none.
func (r *StatementRepo) Begin() *contracts.Statement {
	return r.marker(contracts.KindBegin, r.dialect.Begin())
}

// Commit returns the transaction-commit marker, or nil when the dialect has none.
func (r *StatementRepo) Commit() *contracts.Statement {
	return r.marker(contracts.KindCommit, r.dialect.Commit())
}

// DropStmt renders DROP TABLE IF EXISTS for t.
func (r *StatementRepo) DropStmt(t schema.Table) *contracts.Statement {
	return &contracts.Statement{Kind: contracts.KindDrop, Table: t.Name, SQL: schema.DropStmt(r.dialect, t)}
}

// CreateStmt renders CREATE TABLE IF NOT EXISTS for t.
func (r *StatementRepo) CreateStmt(t schema.Table) *contracts.Statement {
	return &contracts.Statement{Kind: contracts.KindCreate, Table: t.Name, SQL: schema.CreateStmt(r.dialect, t)}
}

// DeleteStmt renders DELETE FROM for t.
func (r *StatementRepo) DeleteStmt(t schema.Table) *contracts.Statement {
	return &contracts.Statement{Kind: contracts.KindDelete, Table: t.Name, SQL: schema.DeleteStmt(r.dialect, t)}
}

// SupplierInsert renders the INSERT for a supplier.
func (r *StatementRepo) SupplierInsert(s *domain.Supplier) (*contracts.Statement, error) {
	return r.insert(m_supplier.TableName, &m_supplier.Data{
		ProvID:     s.ID,
		ProvNombre: s.Name,
	})
}

// CustomerInsert renders the INSERT for a customer.
func (r *StatementRepo) CustomerInsert(c *domain.Customer) (*contracts.Statement, error) {
	return r.insert(m_customer.TableName, &m_customer.Data{
		CliID:          c.ID,
		CliRazonSocial: c.CompanyName,
	})
}

// ProductInsert renders the INSERT for a product.
func (r *StatementRepo) ProductInsert(p *domain.Product) (*contracts.Statement, error) {
	return r.insert(m_product.TableName, &m_product.Data{
		ProdID:          p.ID,
		ProdDescripcion: p.Description,
		ProdColor:       p.Color,
		ProdStatus:      p.Status,
		ProdPrecio:      p.Price.Decimal(),
		ProdProvID:      p.SupplierID,
	})
}

// SaleInsert renders the INSERT for a sale.
func (r *StatementRepo) SaleInsert(s *domain.Sale) (*contracts.Statement, error) {
	return r.insert(m_sale.TableName, &m_sale.Data{
		VentasID:         s.ID,
		VentasFecha:      s.DateString(),
		VentasCliID:      s.CustomerID,
		VentasNroFactura: s.InvoiceNumber,
		VentasNeto:       s.Net.Decimal(),
		VentasIva:        s.Tax.Decimal(),
		VentasTotal:      s.Total.Decimal(),
	})
}

// SaleLineInsert renders the INSERT for a sale line.
func (r *StatementRepo) SaleLineInsert(l *domain.SaleLine) (*contracts.Statement, error) {
	return r.insert(m_sale_line.TableName, &m_sale_line.Data{
		VDID:       l.ID,
		VDVentasID: l.SaleID,
		VDProdID:   l.ProductID,
		VDCantidad: l.Quantity,
		VDPrecio:   l.UnitPrice.Decimal(),
		VDCosto:    l.UnitCost.Decimal(),
	})
}

func (r *StatementRepo) insert(table string, data row) (*contracts.Statement, error) {
	columns := data.Columns()
	values := data.Values()

	sql, err := query.Insert(r.dialect, table).Columns(columns...).Values(values...).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to render insert into %s: %w", table, err)
	}

	return &contracts.Statement{
		Kind:    contracts.KindInsert,
		Table:   table,
		SQL:     sql,
		Columns: columns,
		Values:  values,
	}, nil
}

func (r *StatementRepo) marker(kind contracts.StatementKind, sql string) *contracts.Statement {
	if sql == "" {
		return nil
	}
	return &contracts.Statement{Kind: kind, SQL: sql}
}
