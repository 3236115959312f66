package m_customer

import (
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Table returns the clientes schema.
func Table() schema.Table {
	return schema.Table{
		Name: TableName,
		Columns: []schema.Column{
			{Name: CliID, Type: dialect.Integer, PrimaryKey: true},
			{Name: CliRazonSocial, Type: dialect.Text, NotNull: true, Default: "''"},
		},
	}
}
