package m_sale_line

import (
	"github.com/light-bringer/salesgen/internal/models/m_product"
	"github.com/light-bringer/salesgen/internal/models/m_sale"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Table returns the ventas_detalle schema.
func Table() schema.Table {
	return schema.Table{
		Name: TableName,
		Columns: []schema.Column{
			{Name: VDID, Type: dialect.Integer, PrimaryKey: true},
			{Name: VDVentasID, Type: dialect.Integer, NotNull: true, Default: "'0'"},
			{Name: VDProdID, Type: dialect.Integer, NotNull: true, Default: "'0'"},
			{Name: VDCantidad, Type: dialect.Integer, NotNull: true, Default: "'0'"},
			{Name: VDPrecio, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
			{Name: VDCosto, Type: dialect.Real, NotNull: true, Default: "'0.00'"},
		},
		ForeignKeys: []schema.ForeignKey{
			{Column: VDVentasID, RefTable: m_sale.TableName, RefColumn: m_sale.VentasID},
			{Column: VDProdID, RefTable: m_product.TableName, RefColumn: m_product.ProdID},
		},
	}
}
