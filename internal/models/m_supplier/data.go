package m_supplier

// Data represents one row of the proveedores table.
type Data struct {
	ProvID     int64
	ProvNombre string
}

// Columns returns the insert column list in table order.
func (d *Data) Columns() []string {
	return []string{ProvID, ProvNombre}
}

// Values returns the row values aligned with Columns.
func (d *Data) Values() []interface{} {
	return []interface{}{d.ProvID, d.ProvNombre}
}
