package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGCS(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantBucket string
		wantObject string
		wantOK     bool
		wantErr    bool
	}{
		{"local path", "dump.sql", "", "", false, false},
		{"stdout", "-", "", "", false, false},
		{"object", "gs://datasets/runs/dump.sql", "datasets", "runs/dump.sql", true, false},
		{"missing object", "gs://datasets", "", "", true, true},
		{"missing bucket", "gs:///dump.sql", "", "", true, true},
		{"folder", "gs://datasets/runs/", "", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, ok, err := ParseGCS(tt.target)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestOpen_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w, err := Open(context.Background(), Stdout, &buf)
	require.NoError(t, err)

	_, err = w.Write([]byte("COMMIT;\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "COMMIT;\n", buf.String())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.sql")
	w, err := Open(context.Background(), path, nil)
	require.NoError(t, err)

	_, err = w.Write([]byte("BEGIN TRANSACTION;\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN TRANSACTION;\n", string(got))
}

func TestOpen_InvalidGCS(t *testing.T) {
	_, err := Open(context.Background(), "gs://only-bucket", nil)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestCredentialsFromJSON(t *testing.T) {
	assert.Nil(t, CredentialsFromJSON("  "))
	assert.Len(t, CredentialsFromJSON(`{"type":"service_account"}`), 1)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/sql", contentType("a/b.sql"))
	assert.Contains(t, contentType("book.xlsx"), "spreadsheetml")
	assert.Equal(t, "text/plain; charset=utf-8", contentType("notes"))
}
