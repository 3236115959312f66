package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/app/dataset/fakedata"
	"github.com/light-bringer/salesgen/internal/app/dataset/repo"
	"github.com/light-bringer/salesgen/internal/app/dataset/usecases/generate_dataset"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/randsrc"
)

// SmallParams returns a dataset shape small enough for integration tests.
func SmallParams() domain.Params {
	p := domain.DefaultParams()
	p.Suppliers = 5
	p.Customers = 10
	p.Products = 25
	p.Sales = 40
	return p
}

// Generate runs one seeded generation into sink and returns its summary.
func Generate(t *testing.T, d *dialect.Dialect, sink contracts.Sink, params domain.Params, seed uint64) *generate_dataset.Summary {
	t.Helper()

	rnd := randsrc.New(seed)
	uc := generate_dataset.NewInteractor(
		repo.NewStatementRepo(d),
		sink,
		rnd,
		fakedata.New(rnd),
		clock.NewMockClock(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		nil,
	)
	summary, err := uc.Execute(context.Background(), &generate_dataset.Request{Params: params})
	require.NoError(t, err, "generation failed")
	return summary
}
