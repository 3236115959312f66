// Package script writes the dataset as a SQL text script.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/query"
)

// Sink writes one statement per line to an io.Writer.
//
// With extended inserts enabled, consecutive INSERTs into the same table are
// merged into multi-row statements of at most batch rows. Statement order is
// unchanged because a pending batch is written before any other statement.
type Sink struct {
	w       *bufio.Writer
	dialect *dialect.Dialect
	batch   int

	pending *query.InsertBuilder
	table   string
}

// Option configures a Sink.
type Option func(*Sink)

// WithExtendedInsert merges up to rows consecutive inserts per statement.
// Values below 2 keep one row per statement.
func WithExtendedInsert(rows int) Option {
	return func(s *Sink) {
		s.batch = rows
	}
}

// New creates a script sink writing to w in dialect d.
func New(w io.Writer, d *dialect.Dialect, opts ...Option) *Sink {
	s := &Sink{
		w:       bufio.NewWriter(w),
		dialect: d,
		batch:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit writes stmt, or queues it when it can join an extended insert.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	if s.batch > 1 && stmt.Kind == contracts.KindInsert {
		return s.queue(stmt)
	}
	if err := s.writePending(); err != nil {
		return err
	}
	return s.writeLine(stmt.SQL)
}

// Flush writes any queued rows and flushes the buffer.
func (s *Sink) Flush(ctx context.Context) error {
	if err := s.writePending(); err != nil {
		return err
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush script: %w", err)
	}
	return nil
}

func (s *Sink) queue(stmt *contracts.Statement) error {
	if s.pending != nil && s.table != stmt.Table {
		if err := s.writePending(); err != nil {
			return err
		}
	}
	if s.pending == nil {
		s.pending = query.Insert(s.dialect, stmt.Table).Columns(stmt.Columns...)
		s.table = stmt.Table
	}
	s.pending = s.pending.Values(stmt.Values...)
	if s.pending.RowCount() >= s.batch {
		return s.writePending()
	}
	return nil
}

func (s *Sink) writePending() error {
	if s.pending == nil {
		return nil
	}
	sql, err := s.pending.Build()
	s.pending = nil
	s.table = ""
	if err != nil {
		return fmt.Errorf("failed to render extended insert: %w", err)
	}
	return s.writeLine(sql)
}

func (s *Sink) writeLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}
