package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/salesgen/internal/models"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/query"
	"github.com/light-bringer/salesgen/internal/pkg/schema"
)

// SetupSpannerTest creates a test Spanner client on a database holding the
// dataset schema, and returns a cleanup function. The test is skipped when no
// emulator is configured.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	spannerDB := GetTestSpannerDB()

	WaitForEmulator(t, spannerDB)
	ApplySchema(t, ctx, spannerDB)

	client, err := spanner.NewClient(ctx, spannerDB)
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database path.
func GetTestSpannerDB() string {
	if db := os.Getenv("SALESGEN_TEST_SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/salesgen-test"
}

// CleanDatabase deletes every dataset row, children first.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	tables, err := schema.Order(models.Tables())
	require.NoError(t, err)

	var mutations []*spanner.Mutation
	for _, table := range schema.Reverse(tables) {
		mutations = append(mutations, spanner.Delete(table.Name, spanner.AllKeys()))
	}

	_, err = client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to clean database")
}

// ApplySchema creates the dataset tables if they do not exist yet.
func ApplySchema(t *testing.T, ctx context.Context, spannerDB string) {
	t.Helper()

	tables, err := schema.Order(models.Tables())
	require.NoError(t, err)

	statements := make([]string, len(tables))
	for i, table := range tables {
		statements[i] = schema.CreateStmt(dialect.Spanner, table)
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	require.NoError(t, err, "failed to create admin client")
	defer adminClient.Close()

	ExecuteDDL(t, ctx, adminClient, spannerDB, statements)
}

// ExecuteDDL executes DDL statements (for schema changes in tests).
func ExecuteDDL(t *testing.T, ctx context.Context, adminClient *database.DatabaseAdminClient, spannerDB string, statements []string) {
	t.Helper()

	op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   spannerDB,
		Statements: statements,
	})
	require.NoError(t, err, "failed to start DDL operation")

	err = op.Wait(ctx)
	require.NoError(t, err, "DDL operation failed")
}

// WaitForEmulator waits for the Spanner emulator to be ready.
func WaitForEmulator(t *testing.T, spannerDB string) {
	t.Helper()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		t.Fatalf("Spanner emulator not ready: %v", err)
	}
	defer client.Close()

	iter := client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil {
		t.Fatalf("Spanner emulator not responding: %v", err)
	}
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int64) {
	t.Helper()

	iter := client.Single().Query(context.Background(), query.From(table).Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, expectedCount, count, "unexpected row count in table %s", table)
}
