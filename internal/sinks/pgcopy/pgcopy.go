// Package pgcopy loads the dataset into PostgreSQL with pgx: DDL through Exec,
// rows through COPY in batches.
package pgcopy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
)

// DefaultBatchSize is the number of rows sent per COPY.
const DefaultBatchSize = 1000

// ErrNoTransaction is returned when a commit marker arrives without a begin.
var ErrNoTransaction = errors.New("commit without open transaction")

// Executor is the part of pgx.Conn and pgx.Tx the sink writes through.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Tx is an open transaction.
type Tx interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Conn is a connection able to start transactions.
type Conn interface {
	Executor
	BeginTx(ctx context.Context) (Tx, error)
}

type pgxConn struct {
	*pgx.Conn
}

func (c pgxConn) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := c.Conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// FromPgx adapts a *pgx.Conn.
func FromPgx(conn *pgx.Conn) Conn {
	return pgxConn{Conn: conn}
}

// Connect opens a pgx connection from a connection string or URL.
func Connect(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}

// Sink buffers inserts per table and copies them in batches.
type Sink struct {
	conn      Conn
	tx        Tx
	batchSize int

	table   string
	columns []string
	rows    [][]any
	copied  int64
}

// New creates a Sink. batchSize <= 0 selects DefaultBatchSize.
func New(conn Conn, batchSize int) *Sink {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Sink{conn: conn, batchSize: batchSize}
}

// Copied returns the number of rows sent through COPY.
func (s *Sink) Copied() int64 {
	return s.copied
}

// Emit queues inserts and executes everything else after draining the queue.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	if stmt.Kind == contracts.KindInsert {
		return s.queue(ctx, stmt)
	}
	if err := s.copyPending(ctx); err != nil {
		return err
	}

	switch stmt.Kind {
	case contracts.KindComment:
		return nil

	case contracts.KindBegin:
		tx, err := s.conn.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
		return nil

	case contracts.KindCommit:
		if s.tx == nil {
			return ErrNoTransaction
		}
		err := s.tx.Commit(ctx)
		s.tx = nil
		if err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	if _, err := s.executor().Exec(ctx, stmt.SQL); err != nil {
		s.rollback(ctx)
		return fmt.Errorf("failed to execute %s on %q: %w", stmt.Kind, stmt.Table, err)
	}
	return nil
}

// Flush copies queued rows and commits a transaction left open.
func (s *Sink) Flush(ctx context.Context) error {
	if err := s.copyPending(ctx); err != nil {
		return err
	}
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit(ctx)
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Sink) queue(ctx context.Context, stmt *contracts.Statement) error {
	if s.table != "" && s.table != stmt.Table {
		if err := s.copyPending(ctx); err != nil {
			return err
		}
	}
	if s.table == "" {
		s.table = stmt.Table
		s.columns = stmt.Columns
	}

	row := make([]any, len(stmt.Values))
	for i, v := range stmt.Values {
		row[i] = copyValue(v)
	}
	s.rows = append(s.rows, row)

	if len(s.rows) >= s.batchSize {
		return s.copyPending(ctx)
	}
	return nil
}

func (s *Sink) copyPending(ctx context.Context) error {
	if len(s.rows) == 0 {
		s.table = ""
		return nil
	}
	table, columns, rows := s.table, s.columns, s.rows
	s.table, s.columns, s.rows = "", nil, nil

	n, err := s.executor().CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		s.rollback(ctx)
		return fmt.Errorf("copy into %s (batch=%d): %w", table, len(rows), err)
	}
	s.copied += n
	return nil
}

func (s *Sink) executor() Executor {
	if s.tx != nil {
		return s.tx
	}
	return s.conn
}

func (s *Sink) rollback(ctx context.Context) {
	if s.tx != nil {
		_ = s.tx.Rollback(ctx)
		s.tx = nil
	}
}

// copyValue converts amounts to float64 for DOUBLE PRECISION columns.
func copyValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
