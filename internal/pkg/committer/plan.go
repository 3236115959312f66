// Package committer collects Spanner mutations into a CommitPlan and applies them.
//
// Loaders build mutations without touching the database, add them to a plan,
// and hand the plan to a Committer. Large plans are split into batches so a
// single commit stays under Spanner's per-transaction mutation limit.
//
//	plan := committer.NewPlan()
//	plan.Add(spanner.Insert(table, cols, vals))
//	return c.Apply(ctx, plan)
package committer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

// DefaultBatchSize keeps a batch comfortably below the 80k mutation ceiling
// even for the widest dataset table.
const DefaultBatchSize = 2000

// ErrAlreadyExists is returned when a batch collides with rows already stored.
var ErrAlreadyExists = errors.New("rows already exist")

// CommitPlan is a typed wrapper around Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Reset empties the plan so it can be reused for the next batch.
func (cp *CommitPlan) Reset() {
	cp.mutations = cp.mutations[:0]
}

// Batches splits the plan into consecutive slices of at most size mutations.
// Order is preserved, so parents still precede children.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if size <= 0 {
		size = DefaultBatchSize
	}
	batches := make([][]*spanner.Mutation, 0, (len(cp.mutations)+size-1)/size)
	for start := 0; start < len(cp.mutations); start += size {
		end := start + size
		if end > len(cp.mutations) {
			end = len(cp.mutations)
		}
		batches = append(batches, cp.mutations[start:end])
	}
	return batches
}

// Applier is the subset of *spanner.Client used by Committer.
type Applier interface {
	Apply(ctx context.Context, ms []*spanner.Mutation, opts ...spanner.ApplyOption) (time.Time, error)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client    Applier
	batchSize int
}

// NewCommitter creates a new Committer. batchSize <= 0 selects DefaultBatchSize.
func NewCommitter(client Applier, batchSize int) *Committer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Committer{client: client, batchSize: batchSize}
}

// BatchSize returns the maximum number of mutations per commit.
func (c *Committer) BatchSize() int {
	return c.batchSize
}

// Apply commits the plan, one transaction per batch.
// Batches already committed stay committed when a later batch fails.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // Nothing to commit
	}

	for i, batch := range plan.Batches(c.batchSize) {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			if spanner.ErrCode(err) == codes.AlreadyExists {
				return fmt.Errorf("failed to apply batch %d: %w: %w", i, ErrAlreadyExists, err)
			}
			return fmt.Errorf("failed to apply batch %d: %w", i, err)
		}
	}

	return nil
}
