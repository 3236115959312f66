package m_customer

// Field name constants for the clientes table.
const (
	TableName = "clientes"

	CliID          = "Cli_Id"
	CliRazonSocial = "Cli_RazonSocial"
)
