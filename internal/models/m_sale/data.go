package m_sale

import (
	"github.com/shopspring/decimal"
)

// Data represents one row of the ventas table.
// VentasFecha is stored as text (YYYY-MM-DD), like the source schema.
type Data struct {
	VentasID         int64
	VentasFecha      string
	VentasCliID      int64
	VentasNroFactura int64
	VentasNeto       decimal.Decimal
	VentasIva        decimal.Decimal
	VentasTotal      decimal.Decimal
}

// Columns returns the insert column list in table order.
func (d *Data) Columns() []string {
	return []string{VentasID, VentasFecha, VentasCliID, VentasNroFactura, VentasNeto, VentasIva, VentasTotal}
}

// Values returns the row values aligned with Columns.
func (d *Data) Values() []interface{} {
	return []interface{}{d.VentasID, d.VentasFecha, d.VentasCliID, d.VentasNroFactura, d.VentasNeto, d.VentasIva, d.VentasTotal}
}
