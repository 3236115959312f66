// Package models groups the row types and table definitions of the sales dataset.
package models

import (
	"github.com/light-bringer/salesgen/internal/models/m_customer"
	"github.com/light-bringer/salesgen/internal/models/m_product"
	"github.com/light-bringer/salesgen/internal/models/m_sale"
	"github.com/light-bringer/salesgen/internal/models/m_sale_line"
	"github.com/light-bringer/salesgen/internal/models/m_supplier"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// Tables returns the five dataset tables in dependency order (parents first).
func Tables() []schema.Table {
	return []schema.Table{
		m_supplier.Table(),
		m_customer.Table(),
		m_product.Table(),
		m_sale.Table(),
		m_sale_line.Table(),
	}
}
