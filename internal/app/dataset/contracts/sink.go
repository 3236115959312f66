package contracts

import (
	"context"
)

// StatementKind classifies a statement so sinks that do not consume raw
// SQL (Spanner, spreadsheets) can pick the parts they understand.
type StatementKind int

const (
	// KindComment is a comment line; an empty SQL text is a blank separator line.
	KindComment StatementKind = iota
	// KindPragma toggles engine settings (foreign key enforcement).
	KindPragma
	// KindBegin opens the transaction.
	KindBegin
	// KindDrop drops one table.
	KindDrop
	// KindCreate creates one table.
	KindCreate
	// KindDelete clears one table.
	KindDelete
	// KindInsert inserts one row.
	KindInsert
	// KindCommit commits the transaction.
	KindCommit
)

var kindNames = map[StatementKind]string{
	KindComment: "comment",
	KindPragma:  "pragma",
	KindBegin:   "begin",
	KindDrop:    "drop",
	KindCreate:  "create",
	KindDelete:  "delete",
	KindInsert:  "insert",
	KindCommit:  "commit",
}

// String returns the lowercase kind name.
func (k StatementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Statement is one unit of emission.
type Statement struct {
	Kind  StatementKind
	Table string // empty for comments and transaction markers
	SQL   string // rendered text for the configured dialect, without trailing newline

	// Insert statements only. Values hold int64, string or decimal.Decimal.
	Columns []string
	Values  []interface{}
}

// Sink receives statements in generation order.
// Implementations must not reorder statements.
type Sink interface {
	// Emit accepts the next statement.
	Emit(ctx context.Context, stmt *Statement) error

	// Flush pushes any buffered state to the destination.
	// It is called once, after the last statement.
	Flush(ctx context.Context) error
}
