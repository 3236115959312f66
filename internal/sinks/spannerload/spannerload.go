// Package spannerload loads the dataset rows into Cloud Spanner as mutations.
//
// Spanner DDL cannot run inside a data transaction, so schema statements and
// transaction markers are skipped here; the schema is applied beforehand by
// the migrate command.
package spannerload

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/pkg/committer"
)

// Applier commits a plan. *committer.Committer implements it.
type Applier interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
	BatchSize() int
}

// Sink turns insert and delete statements into mutations.
type Sink struct {
	committer Applier
	plan      *committer.CommitPlan

	applied int
	skipped int
}

// New creates a Sink committing through c.
func New(c Applier) *Sink {
	return &Sink{
		committer: c,
		plan:      committer.NewPlan(),
	}
}

// Applied returns the number of mutations committed so far.
func (s *Sink) Applied() int {
	return s.applied
}

// Skipped returns the number of statements ignored (DDL, markers, comments).
func (s *Sink) Skipped() int {
	return s.skipped
}

// Emit adds a mutation for inserts and deletes. A full batch is committed immediately.
func (s *Sink) Emit(ctx context.Context, stmt *contracts.Statement) error {
	switch stmt.Kind {
	case contracts.KindInsert:
		values := make([]interface{}, len(stmt.Values))
		for i, v := range stmt.Values {
			values[i] = mutationValue(v)
		}
		s.plan.Add(spanner.Insert(stmt.Table, stmt.Columns, values))

	case contracts.KindDelete:
		s.plan.Add(spanner.Delete(stmt.Table, spanner.AllKeys()))

	default:
		s.skipped++
		return nil
	}

	if s.plan.Count() >= s.committer.BatchSize() {
		return s.apply(ctx)
	}
	return nil
}

// Flush commits the remaining mutations.
func (s *Sink) Flush(ctx context.Context) error {
	return s.apply(ctx)
}

func (s *Sink) apply(ctx context.Context) error {
	if s.plan.IsEmpty() {
		return nil
	}
	n := s.plan.Count()
	if err := s.committer.Apply(ctx, s.plan); err != nil {
		return fmt.Errorf("failed to commit mutations: %w", err)
	}
	s.applied += n
	s.plan.Reset()
	return nil
}

// mutationValue maps amounts onto NUMERIC columns.
func mutationValue(v interface{}) interface{} {
	if d, ok := v.(decimal.Decimal); ok {
		return spanner.NullNumeric{Numeric: *d.Rat(), Valid: true}
	}
	return v
}
