package m_product

// Field name constants for the productos table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "productos"

	ProdID          = "Prod_Id"
	ProdDescripcion = "Prod_Descripcion"
	ProdColor       = "Prod_Color"
	ProdStatus      = "Prod_Status"
	ProdPrecio      = "Prod_Precio"
	ProdProvID      = "Prod_ProvId"
)
