//go:build integration

package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/salesgen/internal/models"
	"github.com/light-bringer/salesgen/internal/pkg/committer"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/sinks/spannerload"
	"github.com/light-bringer/salesgen/tests/testutil"
)

func TestSpannerLoad_RowsAndForeignKeys(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	sink := spannerload.New(committer.NewCommitter(client, 100))
	summary := testutil.Generate(t, dialect.Spanner, sink, testutil.SmallParams(), 3)

	for table, want := range summary.Rows() {
		testutil.AssertRowCount(t, client, table, want)
	}

	report, err := spannerload.Verify(ctx, spannerload.NewClientCounter(client), models.Tables(), summary.Rows())
	require.NoError(t, err)
	assert.True(t, report.OK(summary.Rows()))
	assert.Equal(t, int64(0), report.Dangling["ventas_detalle.VD_ProdId"])
}

func TestSpannerLoad_Rerun(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	params := testutil.SmallParams()
	first := testutil.Generate(t, dialect.Spanner, spannerload.New(committer.NewCommitter(client, 100)), params, 5)
	// Delete mutations at the head of the run clear the previous load.
	second := testutil.Generate(t, dialect.Spanner, spannerload.New(committer.NewCommitter(client, 100)), params, 6)

	assert.Equal(t, first.Sales, second.Sales)
	testutil.AssertRowCount(t, client, "ventas", second.Sales)
}

func TestSpannerLoad_DuplicateKeysFail(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	params := testutil.SmallParams()
	testutil.Generate(t, dialect.Spanner, spannerload.New(committer.NewCommitter(client, 100)), params, 9)

	comm := committer.NewCommitter(client, 100)
	plan := committer.NewPlan()
	plan.Add(spanner.Insert("proveedores", []string{"Prov_Id", "Prov_Nombre"}, []interface{}{int64(1), "Duplicado S.L."}))
	err := comm.Apply(context.Background(), plan)
	assert.ErrorIs(t, err, committer.ErrAlreadyExists)
}
