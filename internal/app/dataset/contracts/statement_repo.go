package contracts

import (
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// StatementRepository renders entities and table definitions into statements
// for one dialect. It never writes; the caller hands statements to a Sink.
type StatementRepository interface {
	// DialectName is the registry name of the target dialect.
	DialectName() string
	// Title is the display name used in script comments.
	Title() string

	Pragma() *Statement
	Begin() *Statement
	Commit() *Statement

	DropStmt(t schema.Table) *Statement
	CreateStmt(t schema.Table) *Statement
	DeleteStmt(t schema.Table) *Statement

	SupplierInsert(s *domain.Supplier) (*Statement, error)
	CustomerInsert(c *domain.Customer) (*Statement, error)
	ProductInsert(p *domain.Product) (*Statement, error)
	SaleInsert(s *domain.Sale) (*Statement, error)
	SaleLineInsert(l *domain.SaleLine) (*Statement, error)
}
