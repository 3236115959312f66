package m_product

import (
	"github.com/shopspring/decimal"
)

// Data represents one row of the productos table.
type Data struct {
	ProdID          int64
	ProdDescripcion string
	ProdColor       string
	ProdStatus      int64
	ProdPrecio      decimal.Decimal
	ProdProvID      int64
}

// Columns returns the insert column list in table order.
func (d *Data) Columns() []string {
	return []string{ProdID, ProdDescripcion, ProdColor, ProdStatus, ProdPrecio, ProdProvID}
}

// Values returns the row values aligned with Columns.
func (d *Data) Values() []interface{} {
	return []interface{}{d.ProdID, d.ProdDescripcion, d.ProdColor, d.ProdStatus, d.ProdPrecio, d.ProdProvID}
}
