package sqlexec

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/app/dataset/fakedata"
	"github.com/light-bringer/salesgen/internal/app/dataset/repo"
	"github.com/light-bringer/salesgen/internal/app/dataset/usecases/generate_dataset"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/randsrc"
	"github.com/light-bringer/salesgen/internal/sinks/script"
)

func testParams() domain.Params {
	p := domain.DefaultParams()
	p.Suppliers = 10
	p.Customers = 20
	p.Products = 50
	p.Sales = 100
	return p
}

func generate(t *testing.T, sink contracts.Sink, seed uint64) *generate_dataset.Summary {
	t.Helper()
	rnd := randsrc.New(seed)
	uc := generate_dataset.NewInteractor(
		repo.NewStatementRepo(dialect.SQLite),
		sink,
		rnd,
		fakedata.New(rnd),
		clock.NewMockClock(time.Now()),
		nil,
	)
	summary, err := uc.Execute(context.Background(), &generate_dataset.Request{Params: testParams()})
	require.NoError(t, err)
	return summary
}

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func assertLoaded(t *testing.T, db *sql.DB, summary *generate_dataset.Summary) {
	t.Helper()
	for table, want := range summary.Rows() {
		var got int64
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+table+`"`).Scan(&got))
		assert.Equal(t, want, got, table)
	}

	rows, err := db.Query("PRAGMA foreign_key_check")
	require.NoError(t, err)
	defer rows.Close()
	assert.False(t, rows.Next(), "foreign key violations found")
	require.NoError(t, rows.Err())

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestSink_LoadsDataset(t *testing.T) {
	db := openMemory(t)
	sink := New(db)

	summary := generate(t, sink, 21)
	assert.Positive(t, sink.Executed())
	assertLoaded(t, db, summary)
}

func TestReplayScript(t *testing.T) {
	var buf bytes.Buffer
	summary := generate(t, script.New(&buf, dialect.SQLite), 21)

	db := openMemory(t)
	_, err := db.ExecContext(context.Background(), buf.String())
	require.NoError(t, err)
	assertLoaded(t, db, summary)
}

func TestReplayScript_ExtendedInsert(t *testing.T) {
	var buf bytes.Buffer
	summary := generate(t, script.New(&buf, dialect.SQLite, script.WithExtendedInsert(25)), 8)

	db := openMemory(t)
	_, err := db.ExecContext(context.Background(), buf.String())
	require.NoError(t, err)
	assertLoaded(t, db, summary)
}

func TestSink_Rerun(t *testing.T) {
	db := openMemory(t)

	generate(t, New(db), 1)
	summary := generate(t, New(db), 2)
	assertLoaded(t, db, summary)
}

func TestSink_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("commit without begin", func(t *testing.T) {
		sink := New(openMemory(t))
		err := sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindCommit, SQL: "COMMIT;"})
		assert.ErrorIs(t, err, ErrNoTransaction)
	})

	t.Run("bad statement rolls back", func(t *testing.T) {
		db := openMemory(t)
		sink := New(db)
		require.NoError(t, sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindBegin}))
		require.NoError(t, sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindCreate, Table: "t", SQL: "CREATE TABLE t (id INTEGER)"}))

		err := sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindInsert, Table: "missing", SQL: "INSERT INTO missing VALUES (1)"})
		assert.Error(t, err)

		var n int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name = 't'").Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 0, n, "create must be rolled back")
	})

	t.Run("flush commits open transaction", func(t *testing.T) {
		db := openMemory(t)
		sink := New(db)
		require.NoError(t, sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindBegin}))
		require.NoError(t, sink.Emit(ctx, &contracts.Statement{Kind: contracts.KindCreate, Table: "t", SQL: "CREATE TABLE t (id INTEGER)"}))
		require.NoError(t, sink.Flush(ctx))

		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE name = 't'").Scan(&n))
		assert.Equal(t, 1, n)
	})
}
