package m_sale_line

import (
	"github.com/shopspring/decimal"
)

// Data represents one row of the ventas_detalle table.
type Data struct {
	VDID       int64
	VDVentasID int64
	VDProdID   int64
	VDCantidad int64
	VDPrecio   decimal.Decimal
	VDCosto    decimal.Decimal
}

// Columns returns the insert column list in table order.
func (d *Data) Columns() []string {
	return []string{VDID, VDVentasID, VDProdID, VDCantidad, VDPrecio, VDCosto}
}

// Values returns the row values aligned with Columns.
func (d *Data) Values() []interface{} {
	return []interface{}{d.VDID, d.VDVentasID, d.VDProdID, d.VDCantidad, d.VDPrecio, d.VDCosto}
}
