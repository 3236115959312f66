package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, err := Lookup(" SQLite ")
	require.NoError(t, err)
	assert.Same(t, SQLite, d)

	_, err = Lookup("oracle")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestScriptNames(t *testing.T) {
	assert.Equal(t, []string{"mysql", "postgres", "sqlite"}, ScriptNames())
}

func TestQuoteString(t *testing.T) {
	tests := []struct {
		name    string
		dialect *Dialect
		in      string
		want    string
	}{
		{"plain", SQLite, "Ferretería Norte", "'Ferretería Norte'"},
		{"single quote doubled", SQLite, "O'Brien", "'O''Brien'"},
		{"several quotes", Postgres, "'a''b'", "'''a''''b'''"},
		{"mysql escapes backslash", MySQL, `C:\tmp's`, `'C:\\tmp''s'`},
		{"sqlite keeps backslash", SQLite, `C:\tmp`, `'C:\tmp'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.QuoteString(tt.in))
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"ventas"`, SQLite.QuoteIdent("ventas"))
	assert.Equal(t, "`ventas`", MySQL.QuoteIdent("ventas"))
	assert.Equal(t, `"we""ird"`, Postgres.QuoteIdent(`we"ird`))
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, "PRAGMA foreign_keys = ON;", SQLite.Pragma())
	assert.Equal(t, "BEGIN TRANSACTION;", SQLite.Begin())
	assert.Equal(t, "", Postgres.Pragma())
	assert.Equal(t, "START TRANSACTION;", MySQL.Begin())
	assert.False(t, Spanner.Scriptable())
	assert.True(t, Spanner.TrailingPrimaryKey())
	assert.Equal(t, "REAL", SQLite.TypeName(Real))
}
