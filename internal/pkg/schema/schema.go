// Package schema describes tables and renders their DDL for a dialect.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/light-bringer/salesgen/internal/pkg/dialect"
)

var (
	// ErrDependencyCycle is returned when foreign keys form a cycle.
	ErrDependencyCycle = errors.New("foreign key dependency cycle")
	// ErrUnknownReference is returned when a foreign key targets a table outside the set.
	ErrUnknownReference = errors.New("foreign key references unknown table")
)

// Column defines a single column.
type Column struct {
	Name       string
	Type       dialect.ColumnType
	PrimaryKey bool
	NotNull    bool
	Default    string // literal, e.g. "'0'"; empty for none
}

// ForeignKey defines a foreign key reference.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table defines a table's schema for DDL generation.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the primary key column name, or "" if none is declared.
func (t Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

// CreateStmt renders CREATE TABLE IF NOT EXISTS for the dialect.
func CreateStmt(d *dialect.Dialect, t Table) string {
	lines := make([]string, 0, len(t.Columns)+len(t.ForeignKeys))
	for _, c := range t.Columns {
		lines = append(lines, "  "+columnDef(d, c))
	}
	for _, fk := range t.ForeignKeys {
		lines = append(lines, "  "+foreignKeyDef(d, t.Name, fk))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", d.QuoteIdent(t.Name))
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")
	if d.TrailingPrimaryKey() {
		if pk := t.PrimaryKey(); pk != "" {
			fmt.Fprintf(&b, " PRIMARY KEY (%s)", d.QuoteIdent(pk))
		}
	}
	b.WriteString(d.TableSuffix())
	b.WriteString(d.Terminator())
	return b.String()
}

// DropStmt renders DROP TABLE IF EXISTS.
func DropStmt(d *dialect.Dialect, t Table) string {
	return "DROP TABLE IF EXISTS " + d.QuoteIdent(t.Name) + d.Terminator()
}

// DeleteStmt renders an unconditional DELETE FROM.
func DeleteStmt(d *dialect.Dialect, t Table) string {
	return "DELETE FROM " + d.QuoteIdent(t.Name) + d.Terminator()
}

func columnDef(d *dialect.Dialect, c Column) string {
	parts := []string{d.QuoteIdent(c.Name), d.TypeName(c.Type)}
	switch {
	case c.PrimaryKey:
		parts = append(parts, d.PrimaryKeySuffix())
	case c.NotNull:
		parts = append(parts, "NOT NULL")
	}
	if c.Default != "" && !c.PrimaryKey && d.SupportsDefaults() {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}

func foreignKeyDef(d *dialect.Dialect, table string, fk ForeignKey) string {
	if d.TrailingPrimaryKey() {
		return fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.QuoteIdent("FK_"+table+"_"+fk.Column),
			d.QuoteIdent(fk.Column),
			d.QuoteIdent(fk.RefTable),
			d.QuoteIdent(fk.RefColumn),
		)
	}
	return fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)",
		d.QuoteIdent(fk.Column),
		d.QuoteIdent(fk.RefTable),
		d.QuoteIdent(fk.RefColumn),
	)
}

// Order returns tables in dependency order (parents first) using Kahn's algorithm.
// Ties keep the input order so the result is deterministic.
func Order(tables []Table) ([]Table, error) {
	index := make(map[string]int, len(tables))
	for i, t := range tables {
		index[t.Name] = i
	}

	inDegree := make([]int, len(tables))
	dependents := make([][]int, len(tables)) // parent -> children
	for i, t := range tables {
		for _, fk := range t.ForeignKeys {
			parent, ok := index[fk.RefTable]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownReference, t.Name, fk.RefTable)
			}
			if parent == i {
				continue
			}
			inDegree[i]++
			dependents[parent] = append(dependents[parent], i)
		}
	}

	done := make([]bool, len(tables))
	sorted := make([]Table, 0, len(tables))
	for len(sorted) < len(tables) {
		next := -1
		for i := range tables {
			if !done[i] && inDegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, ErrDependencyCycle
		}
		done[next] = true
		sorted = append(sorted, tables[next])
		for _, child := range dependents[next] {
			inDegree[child]--
		}
	}

	return sorted, nil
}

// Reverse returns a copy of tables in reverse order (children first).
func Reverse(tables []Table) []Table {
	out := make([]Table, len(tables))
	for i, t := range tables {
		out[len(tables)-1-i] = t
	}
	return out
}
