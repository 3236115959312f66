package m_product

import (
	"github.com/light-bringer/salesgen/internal/models/m_supplier"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Table returns the productos schema. Prod_ProvId stays nullable as in the source schema.
func Table() schema.Table {
	return schema.Table{
		Name: TableName,
		Columns: []schema.Column{
			{Name: ProdID, Type: dialect.Integer, PrimaryKey: true},
			{Name: ProdDescripcion, Type: dialect.Text, NotNull: true, Default: "''"},
			{Name: ProdColor, Type: dialect.Text, NotNull: true, Default: "''"},
			{Name: ProdStatus, Type: dialect.Integer, NotNull: true, Default: "'1'"},
			{Name: ProdPrecio, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
			{Name: ProdProvID, Type: dialect.Integer, Default: "'0'"},
		},
		ForeignKeys: []schema.ForeignKey{
			{Column: ProdProvID, RefTable: m_supplier.TableName, RefColumn: m_supplier.ProvID},
		},
	}
}
