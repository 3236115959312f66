// Package gormexec loads the dataset into MySQL through GORM.
package gormexec

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
)

// ErrNoTransaction is returned when a commit marker arrives without a begin.
var ErrNoTransaction = errors.New("commit without open transaction")

// Open connects to MySQL. GORM logs go through log at error level.
// The DSN should not enable multiStatements; every statement is sent on its own.
func Open(dsn string, log *logrus.Entry) (*gorm.DB, error) {
	return OpenDialector(mysql.Open(dsn), log)
}

// OpenDialector opens GORM on an arbitrary dialector (tests pass an existing connection).
func OpenDialector(dialector gorm.Dialector, log *logrus.Entry) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log, logger.Config{
			Colorful:      false,
			LogLevel:      logger.Error,
			SlowThreshold: time.Second,
		}),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Sink executes statements with raw GORM Exec calls.
// MySQL commits implicitly around DDL, so only the row section is truly atomic.
type Sink struct {
	db       *gorm.DB
	tx       *gorm.DB
	executed int
}

// New creates a Sink on db.
func New(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

// Executed returns the number of statements sent to the database.
func (s *Sink) Executed() int {
	return s.executed
}

// Emit executes stmt. Comments are skipped; begin and commit drive a GORM transaction.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	switch stmt.Kind {
	case contracts.KindComment:
		return nil

	case contracts.KindBegin:
		tx := s.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to begin transaction: %w", tx.Error)
		}
		s.tx = tx
		return nil

	case contracts.KindCommit:
		if s.tx == nil {
			return ErrNoTransaction
		}
		err := s.tx.Commit().Error
		s.tx = nil
		if err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	target := s.tx
	if target == nil {
		target = s.db.WithContext(ctx)
	}
	if err := target.Exec(stmt.SQL).Error; err != nil {
		if s.tx != nil {
			s.tx.Rollback()
			s.tx = nil
		}
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
	err := s.tx.Commit().Error
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
