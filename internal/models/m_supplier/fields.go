package m_supplier

// Field name constants for the proveedores table.
const (
	TableName = "proveedores"

	ProvID     = "Prov_Id"
	ProvNombre = "Prov_Nombre"
)
