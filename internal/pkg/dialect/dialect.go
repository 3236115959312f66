// Package dialect holds the per-engine rules used to render the dataset script:
// identifier quoting, string literal escaping, transaction markers and column types.
package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownDialect is returned by Lookup for unsupported names.
var ErrUnknownDialect = errors.New("unknown dialect")

// ColumnType is the logical type of a column.
type ColumnType int

const (
	// Integer is a whole number column (ids, quantities, flags).
	Integer ColumnType = iota
	// Text is a free-text column.
	Text
	// Real is a monetary column with two decimals.
	Real
)

// Dialect describes how one SQL engine spells the script.
type Dialect struct {
	name            string
	title           string
	identQuote      string
	escapeBackslash bool
	pragma          string
	begin           string
	commit          string
	types           map[ColumnType]string
	pkSuffix        string
	tableSuffix     string
	trailingPK      bool
	defaults        bool
	scriptable      bool
}

var (
	// SQLite is the default dialect.
	SQLite = &Dialect{
		name:       "sqlite",
		title:      "SQLite",
		identQuote: `"`,
		pragma:     "PRAGMA foreign_keys = ON;",
		begin:      "BEGIN TRANSACTION;",
		commit:     "COMMIT;",
		types: map[ColumnType]string{
			Integer: "INTEGER",
			Text:    "TEXT",
			Real:    "REAL",
		},
		pkSuffix:   "PRIMARY KEY AUTOINCREMENT",
		defaults:   true,
		scriptable: true,
	}

	// MySQL targets InnoDB; backslashes are escapes in MySQL string literals.
	MySQL = &Dialect{
		name:            "mysql",
		title:           "MySQL",
		identQuote:      "`",
		escapeBackslash: true,
		pragma:          "SET FOREIGN_KEY_CHECKS = 1;",
		begin:           "START TRANSACTION;",
		commit:          "COMMIT;",
		types: map[ColumnType]string{
			Integer: "INT",
			Text:    "VARCHAR(255)",
			Real:    "DECIMAL(12,2)",
		},
		pkSuffix:    "NOT NULL AUTO_INCREMENT PRIMARY KEY",
		tableSuffix: " ENGINE=InnoDB",
		defaults:    true,
		scriptable:  true,
	}

	// Postgres uses quoted mixed-case identifiers and explicit ids.
	Postgres = &Dialect{
		name:       "postgres",
		title:      "PostgreSQL",
		identQuote: `"`,
		begin:      "BEGIN;",
		commit:     "COMMIT;",
		types: map[ColumnType]string{
			Integer: "INTEGER",
			Text:    "TEXT",
			Real:    "DOUBLE PRECISION",
		},
		pkSuffix:   "PRIMARY KEY",
		defaults:   true,
		scriptable: true,
	}

	// Spanner is only used for DDL; rows reach Spanner as mutations.
	Spanner = &Dialect{
		name:       "spanner",
		title:      "Cloud Spanner",
		identQuote: "`",
		types: map[ColumnType]string{
			Integer: "INT64",
			Text:    "STRING(MAX)",
			Real:    "NUMERIC",
		},
		pkSuffix:   "NOT NULL",
		trailingPK: true,
	}
)

var registry = map[string]*Dialect{
	SQLite.name:   SQLite,
	MySQL.name:    MySQL,
	Postgres.name: Postgres,
	Spanner.name:  Spanner,
}

// Lookup returns the dialect registered under name.
func Lookup(name string) (*Dialect, error) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// ScriptNames lists the dialects a full script can be rendered in.
func ScriptNames() []string {
	names := make([]string, 0, len(registry))
	for name, d := range registry {
		if d.scriptable {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Name returns the dialect name.
func (d *Dialect) Name() string { return d.name }

// Title returns the display name used in script headers.
func (d *Dialect) Title() string { return d.title }

// Scriptable reports whether a complete text script can target this dialect.
func (d *Dialect) Scriptable() bool { return d.scriptable }

// Terminator ends every statement: ";" for scripts, nothing for Spanner DDL requests.
func (d *Dialect) Terminator() string {
	if d.scriptable {
		return ";"
	}
	return ""
}

// Pragma returns the foreign key toggle line, or "" when the engine has none.
func (d *Dialect) Pragma() string { return d.pragma }

// Begin returns the transaction-begin marker.
func (d *Dialect) Begin() string { return d.begin }

// Commit returns the transaction-commit marker.
func (d *Dialect) Commit() string { return d.commit }

// TypeName returns the engine's spelling of a logical column type.
func (d *Dialect) TypeName(t ColumnType) string { return d.types[t] }

// PrimaryKeySuffix is appended to the primary key column definition.
func (d *Dialect) PrimaryKeySuffix() string { return d.pkSuffix }

// TableSuffix is appended after the closing parenthesis of CREATE TABLE.
func (d *Dialect) TableSuffix() string { return d.tableSuffix }

// TrailingPrimaryKey reports whether the key is declared after the column list.
func (d *Dialect) TrailingPrimaryKey() bool { return d.trailingPK }

// SupportsDefaults reports whether column DEFAULT clauses are rendered.
func (d *Dialect) SupportsDefaults() bool { return d.defaults }

// QuoteIdent quotes a table or column name.
func (d *Dialect) QuoteIdent(name string) string {
	q := d.identQuote
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// QuoteString renders a string literal, doubling embedded single quotes.
// Example: O'Brien becomes 'O''Brien'.
func (d *Dialect) QuoteString(s string) string {
	if d.escapeBackslash {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
