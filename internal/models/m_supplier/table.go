package m_supplier

import (
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Table returns the proveedores schema.
func Table() schema.Table {
	return schema.Table{
		Name: TableName,
		Columns: []schema.Column{
			{Name: ProvID, Type: dialect.Integer, PrimaryKey: true},
			{Name: ProvNombre, Type: dialect.Text, NotNull: true, Default: "'0'"},
		},
	}
}
