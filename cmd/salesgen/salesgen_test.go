package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/light-bringer/salesgen/internal/config"
	"github.com/light-bringer/salesgen/internal/sinks/sqlexec"
)

var smallDataset = []string{
	"--seed", "11",
	"--suppliers", "3",
	"--customers", "4",
	"--products", "5",
	"--sales", "6",
	"--log-level", "error",
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(config.Default(), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := execute(t, append([]string{"generate"}, smallDataset...)...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "-- SQL generado para SQLite\n"))
	assert.Contains(t, out, "PRAGMA foreign_keys = ON;")
	assert.Contains(t, out, "-- 4.5. Insertando datos en 'ventas_detalle'")
	assert.True(t, strings.HasSuffix(out, "-- Fin de la generación de datos.\n"))

	again, _, err := execute(t, append([]string{"generate"}, smallDataset...)...)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_FileAndDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.sql")
	args := append([]string{"generate", "--dialect", "postgres", "--extended-insert", "100", "-o", path}, smallDataset...)
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, path)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "generate", "--dialect", "oracle")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGenerate_Debug(t *testing.T) {
	_, stderr, err := execute(t, append([]string{"generate", "--debug"}, smallDataset...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "domain.Params")
}

func TestExport_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.xlsx")
	_, _, err := execute(t, append([]string{"export", "-o", path}, smallDataset...)...)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"proveedores", "clientes", "productos", "ventas", "ventas_detalle"}, f.GetSheetList())

	rows, err := f.GetRows("proveedores")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, []string{"Prov_Id", "Prov_Nombre"}, rows[0])
}

func TestLoad_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.db")
	_, _, err := execute(t, append([]string{"load", "--target", "sqlite", "--dsn", path}, smallDataset...)...)
	require.NoError(t, err)

	ctx := context.Background()
	db, err := sqlexec.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var customers int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "clientes"`).Scan(&customers))
	assert.Equal(t, 4, customers)
}

func TestLoad_RequiresTarget(t *testing.T) {
	_, _, err := execute(t, "load")
	assert.ErrorIs(t, err, errMissingTarget)
}

func TestParseDatabasePath(t *testing.T) {
	p, err := parseDatabasePath("projects/test-project/instances/dev-instance/databases/salesgen-db")
	require.NoError(t, err)
	assert.Equal(t, "projects/test-project", p.projectName())
	assert.Equal(t, "projects/test-project/instances/dev-instance", p.instanceName())
	assert.Equal(t, "salesgen-db", p.database)
	assert.Equal(t, "projects/test-project/instances/dev-instance/databases/salesgen-db", p.String())

	for _, bad := range []string{"", "salesgen-db", "projects/p/instances/i", "projects/p/instances//databases/d", "projects/p/zones/i/databases/d"} {
		_, err := parseDatabasePath(bad)
		assert.ErrorIs(t, err, errDatabasePath, bad)
	}
}

func TestMigrationDDL(t *testing.T) {
	stmts, err := migrationDDL(false)
	require.NoError(t, err)
	require.Len(t, stmts, 5)
	assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE IF NOT EXISTS `proveedores`"))
	assert.Contains(t, stmts[4], "PRIMARY KEY (`VD_Id`)")
	for _, s := range stmts {
		assert.False(t, strings.HasSuffix(s, ";"), s)
	}

	stmts, err = migrationDDL(true)
	require.NoError(t, err)
	require.Len(t, stmts, 10)
	assert.Equal(t, "DROP TABLE IF EXISTS `ventas_detalle`", stmts[0])
	assert.Equal(t, "DROP TABLE IF EXISTS `proveedores`", stmts[4])
}
