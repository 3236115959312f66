package spannerload

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/salesgen/internal/pkg/query"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// ErrVerificationFailed is returned when loaded data does not match the run summary.
var ErrVerificationFailed = errors.New("dataset verification failed")

// Counter runs a COUNT(*) statement.
type Counter interface {
	Count(ctx context.Context, stmt spanner.Statement) (int64, error)
}

// ClientCounter counts through a single-use read-only transaction.
type ClientCounter struct {
	client *spanner.Client
}

// NewClientCounter creates a ClientCounter.
func NewClientCounter(client *spanner.Client) *ClientCounter {
	return &ClientCounter{client: client}
}

// Count returns the single INT64 produced by stmt.
func (c *ClientCounter) Count(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := c.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, fmt.Errorf("count query returned no rows: %s", stmt.SQL)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to run count query: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// Report is the outcome of Verify.
type Report struct {
	Rows     map[string]int64 // table -> stored rows
	Dangling map[string]int64 // "table.column" -> rows whose reference is null or out of range
}

// OK reports whether the report has no discrepancies against expected.
func (r *Report) OK(expected map[string]int64) bool {
	for table, want := range expected {
		if r.Rows[table] != want {
			return false
		}
	}
	for _, n := range r.Dangling {
		if n != 0 {
			return false
		}
	}
	return true
}

// Verify compares stored row counts with expected and checks that every
// foreign key points into the dense identifier range of its parent.
func Verify(ctx context.Context, counter Counter, tables []schema.Table, expected map[string]int64) (*Report, error) {
	report := &Report{
		Rows:     make(map[string]int64, len(tables)),
		Dangling: make(map[string]int64),
	}

	for _, t := range tables {
		n, err := counter.Count(ctx, query.From(t.Name).Count().Build())
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.Name, err)
		}
		report.Rows[t.Name] = n

		for _, fk := range t.ForeignKeys {
			key := t.Name + "." + fk.Column

			nulls, err := counter.Count(ctx, query.From(t.Name).Where(query.IsNull(fk.Column)).Count().Build())
			if err != nil {
				return nil, fmt.Errorf("failed to count null %s: %w", key, err)
			}
			outside, err := counter.Count(ctx, query.From(t.Name).Where(query.Gt(fk.Column, expected[fk.RefTable])).Count().Build())
			if err != nil {
				return nil, fmt.Errorf("failed to count dangling %s: %w", key, err)
			}
			report.Dangling[key] = nulls + outside
		}
	}

	if !report.OK(expected) {
		return report, ErrVerificationFailed
	}
	return report, nil
}
