package m_customer

// Data represents one row of the clientes table.
type Data struct {
	CliID          int64
	CliRazonSocial string
}

// Columns returns the insert column list in table order.
func (d *Data) Columns() []string {
	return []string{CliID, CliRazonSocial}
}

// Values returns the row values aligned with Columns.
func (d *Data) Values() []interface{} {
	return []interface{}{d.CliID, d.CliRazonSocial}
}
