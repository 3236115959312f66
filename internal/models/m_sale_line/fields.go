package m_sale_line

// Field name constants for the ventas_detalle table.
const (
	TableName = "ventas_detalle"

	VDID       = "VD_Id"
	VDVentasID = "VD_VentasId"
	VDProdID   = "VD_ProdId"
	VDCantidad = "VD_Cantidad"
	VDPrecio   = "VD_Precio"
	VDCosto    = "VD_Costo"
)
