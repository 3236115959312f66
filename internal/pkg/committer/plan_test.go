package committer

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	calls [][]*spanner.Mutation
	err   error
}

func (f *fakeApplier) Apply(_ context.Context, ms []*spanner.Mutation, _ ...spanner.ApplyOption) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	f.calls = append(f.calls, ms)
	return time.Now(), nil
}

func mutations(n int) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, n)
	for i := range muts {
		muts[i] = spanner.Insert("clientes", []string{"Cli_Id"}, []interface{}{int64(i + 1)})
	}
	return muts
}

func TestCommitPlan(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.Equal(t, 0, plan.Count())

	plan.AddMultiple(mutations(5))
	assert.Equal(t, 5, plan.Count())
	assert.Len(t, plan.Mutations(), 5)

	batches := plan.Batches(2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)

	plan.Reset()
	assert.True(t, plan.IsEmpty())
}

func TestCommitter_Apply(t *testing.T) {
	t.Run("empty plan is a no-op", func(t *testing.T) {
		fake := &fakeApplier{}
		require.NoError(t, NewCommitter(fake, 10).Apply(context.Background(), NewPlan()))
		assert.Empty(t, fake.calls)
	})

	t.Run("splits into batches", func(t *testing.T) {
		fake := &fakeApplier{}
		plan := NewPlan()
		plan.AddMultiple(mutations(7))

		require.NoError(t, NewCommitter(fake, 3).Apply(context.Background(), plan))
		require.Len(t, fake.calls, 3)
		assert.Len(t, fake.calls[0], 3)
		assert.Len(t, fake.calls[1], 3)
		assert.Len(t, fake.calls[2], 1)
	})

	t.Run("wraps errors", func(t *testing.T) {
		boom := errors.New("boom")
		plan := NewPlan()
		plan.AddMultiple(mutations(1))

		err := NewCommitter(&fakeApplier{err: boom}, 0).Apply(context.Background(), plan)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("default batch size", func(t *testing.T) {
		assert.Equal(t, DefaultBatchSize, NewCommitter(&fakeApplier{}, -1).BatchSize())
	})
}
