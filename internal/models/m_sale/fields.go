package m_sale

// Field name constants for the ventas table.
const (
	TableName = "ventas"

	VentasID          = "Ventas_Id"
	VentasFecha       = "Ventas_Fecha"
	VentasCliID       = "Ventas_CliId"
	VentasNroFactura  = "Ventas_NroFactura"
	VentasNeto        = "Ventas_Neto"
	VentasIva         = "Ventas_Iva"
	VentasTotal       = "Ventas_Total"
)
