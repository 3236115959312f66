// Package sqlexec runs the dataset statements against a database/sql handle.
package sqlexec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
)

// ErrNoTransaction is returned when a commit marker arrives without a begin.
var ErrNoTransaction = errors.New("commit without open transaction")

// Open opens a SQLite database through modernc.org/sqlite.
// A single connection keeps ":memory:" databases and pragmas consistent.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	return db, nil
}

// Sink executes statements in order. Begin and commit markers map to a real
// transaction; everything in between runs inside it.
type Sink struct {
	db       *sql.DB
	tx       *sql.Tx
	executed int
}

// New creates a Sink on db.
func New(db *sql.DB) *Sink {
	return &Sink{db: db}
}

// Executed returns the number of statements sent to the database.
func (s *Sink) Executed() int {
	return s.executed
}

// Emit executes stmt. Comments are skipped.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	switch stmt.Kind {
	case contracts.KindComment:
		return nil

	case contracts.KindBegin:
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
		return nil

	case contracts.KindCommit:
		if s.tx == nil {
			return ErrNoTransaction
		}
		err := s.tx.Commit()
		s.tx = nil
		if err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	var err error
	if s.tx != nil {
		_, err = s.tx.ExecContext(ctx, stmt.SQL)
	} else {
		_, err = s.db.ExecContext(ctx, stmt.SQL)
	}
	if err != nil {
		s.rollback()
		return fmt.Errorf("failed to execute %s on %q: %w", stmt.Kind, stmt.Table, err)
	}
	s.executed++
	return nil
}

// Flush commits a transaction that was opened but never closed.
func (s *Sink) Flush(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Sink) rollback() {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
}
