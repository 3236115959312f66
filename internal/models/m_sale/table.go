package m_sale

import (
	"github.com/light-bringer/salesgen/internal/models/m_customer"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Table returns the ventas schema.
func Table() schema.Table {
	return schema.Table{
		Name: TableName,
		Columns: []schema.Column{
			{Name: VentasID, Type: dialect.Integer, PrimaryKey: true},
			{Name: VentasFecha, Type: dialect.Text, NotNull: true},
			{Name: VentasCliID, Type: dialect.Integer, NotNull: true, Default: "'0'"},
			{Name: VentasNroFactura, Type: dialect.Integer, NotNull: true, Default: "'0'"},
			{Name: VentasNeto, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
			{Name: VentasIva, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
			{Name: VentasTotal, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
		},
		ForeignKeys: []schema.ForeignKey{
			{Column: VentasCliID, RefTable: m_customer.TableName, RefColumn: m_customer.CliID},
		},
	}
}
