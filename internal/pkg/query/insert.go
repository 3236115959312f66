package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/salesgen/internal/pkg/dialect"
)

var (
	// ErrNoRows is returned when an insert is built without any row.
	ErrNoRows = errors.New("insert has no rows")
	// ErrColumnMismatch is returned when a row's width differs from the column list.
	ErrColumnMismatch = errors.New("row width does not match columns")
	// ErrUnsupportedValue is returned for values that have no literal form.
	ErrUnsupportedValue = errors.New("unsupported value type")
)

// InsertBuilder renders INSERT statements for a dialect.
// Several Values calls produce one multi-row (extended) insert.
type InsertBuilder struct {
	dialect *dialect.Dialect
	table   string
	columns []string
	rows    [][]interface{}
}

// Insert creates a new InsertBuilder for table.
func Insert(d *dialect.Dialect, table string) *InsertBuilder {
	return &InsertBuilder{
		dialect: d,
		table:   table,
	}
}

// Columns sets the column list.
func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	newBuilder := b.clone()
	newBuilder.columns = append([]string{}, columns...)
	return newBuilder
}

// Values appends one row.
func (b *InsertBuilder) Values(values ...interface{}) *InsertBuilder {
	newBuilder := b.clone()
	newBuilder.rows = append(newBuilder.rows, append([]interface{}{}, values...))
	return newBuilder
}

// RowCount returns the number of rows added so far.
func (b *InsertBuilder) RowCount() int {
	return len(b.rows)
}

// Build renders the statement, terminator included.
func (b *InsertBuilder) Build() (string, error) {
	if len(b.rows) == 0 {
		return "", ErrNoRows
	}

	quoted := make([]string, len(b.columns))
	for i, c := range b.columns {
		quoted[i] = b.dialect.QuoteIdent(c)
	}

	tuples := make([]string, 0, len(b.rows))
	for n, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", fmt.Errorf("%w: row %d has %d values for %d columns", ErrColumnMismatch, n, len(row), len(b.columns))
		}
		literals := make([]string, len(row))
		for i, v := range row {
			lit, err := Literal(b.dialect, v)
			if err != nil {
				return "", fmt.Errorf("failed to render column %s: %w", b.columns[i], err)
			}
			literals[i] = lit
		}
		tuples = append(tuples, "("+strings.Join(literals, ", ")+")")
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "INSERT INTO %s (%s) VALUES ", b.dialect.QuoteIdent(b.table), strings.Join(quoted, ", "))
	sql.WriteString(strings.Join(tuples, ", "))
	sql.WriteString(b.dialect.Terminator())
	return sql.String(), nil
}

// Literal renders a single value as a SQL literal.
// Decimals and floats always carry two fraction digits.
func Literal(d *dialect.Dialect, v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case string:
		return d.QuoteString(val), nil
	case decimal.Decimal:
		return val.StringFixed(2), nil
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func (b *InsertBuilder) clone() *InsertBuilder {
	newBuilder := &InsertBuilder{
		dialect: b.dialect,
		table:   b.table,
		columns: make([]string, len(b.columns)),
		rows:    make([][]interface{}, len(b.rows)),
	}
	copy(newBuilder.columns, b.columns)
	copy(newBuilder.rows, b.rows)
	return newBuilder
}
