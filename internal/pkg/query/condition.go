package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// gtCondition implements a strict greater-than comparison (field > value).
type gtCondition struct {
	field string
	value interface{}
}

// Gt creates a WHERE condition for greater-than comparison.
// Example: Gt("VD_VentasId", int64(5000)) generates "VD_VentasId > @p0"
func Gt(field string, value interface{}) Condition {
	return &gtCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for greater-than comparison.
func (c *gtCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s > @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("Prod_ProvId") generates "Prod_ProvId IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// isNullCondition implements IS NULL comparison.
type isNullCondition struct {
	field string
}

// SQL generates the SQL fragment for IS NULL comparison.
func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NULL", c.field)
	return sql, map[string]interface{}{}
}
