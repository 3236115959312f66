// Package output opens the destination a script or workbook is written to.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Stdout is the target name for standard output.
const Stdout = "-"

const gcsScheme = "gs://"

// ErrInvalidTarget is returned for malformed gs:// targets.
var ErrInvalidTarget = errors.New("invalid output target")

// ParseGCS splits gs://bucket/object. ok is false when target is not a gs:// URL.
func ParseGCS(target string) (bucket, object string, ok bool, err error) {
	if !strings.HasPrefix(target, gcsScheme) {
		return "", "", false, nil
	}
	rest := strings.TrimPrefix(target, gcsScheme)
	bucket, object, found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", true, fmt.Errorf("%w: %q needs gs://bucket/object", ErrInvalidTarget, target)
	}
	return bucket, object, true, nil
}

// Open returns a writer for target: "-" (or "") for stdout, gs://bucket/object for
// Cloud Storage, anything else is a local file path. The caller must Close the writer;
// for Cloud Storage the object is only committed by Close.
func Open(ctx context.Context, target string, stdout io.Writer, opts ...option.ClientOption) (io.WriteCloser, error) {
	if target == "" || target == Stdout {
		return nopCloser{stdout}, nil
	}

	bucket, object, isGCS, err := ParseGCS(target)
	if err != nil {
		return nil, err
	}
	if isGCS {
		return openGCS(ctx, bucket, object, opts...)
	}

	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}
	return f, nil
}

// CredentialsFromJSON returns the client option for inline service account JSON,
// or nil when json is blank so Application Default Credentials are used.
func CredentialsFromJSON(json string) []option.ClientOption {
	if strings.TrimSpace(json) == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsJSON([]byte(json))}
}

func openGCS(ctx context.Context, bucket, object string, opts ...option.ClientOption) (io.WriteCloser, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType(object)
	return &gcsWriter{w: w, client: client}, nil
}

func contentType(object string) string {
	switch {
	case strings.HasSuffix(object, ".xlsx"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case strings.HasSuffix(object, ".sql"):
		return "application/sql"
	default:
		return "text/plain; charset=utf-8"
	}
}

type gcsWriter struct {
	w      *storage.Writer
	client *storage.Client
}

func (g *gcsWriter) Write(p []byte) (int, error) {
	return g.w.Write(p)
}

func (g *gcsWriter) Close() error {
	defer g.client.Close()
	if err := g.w.Close(); err != nil {
		return fmt.Errorf("failed to upload gs://%s/%s: %w", g.w.Bucket, g.w.Name, err)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
