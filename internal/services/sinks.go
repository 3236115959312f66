package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/models"
	"github.com/light-bringer/salesgen/internal/pkg/committer"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/output"
	"github.com/light-bringer/salesgen/internal/sinks/gormexec"
	"github.com/light-bringer/salesgen/internal/sinks/pgcopy"
	"github.com/light-bringer/salesgen/internal/sinks/script"
	"github.com/light-bringer/salesgen/internal/sinks/spannerload"
	"github.com/light-bringer/salesgen/internal/sinks/sqlexec"
	"github.com/light-bringer/salesgen/internal/sinks/workbook"
)

var (
	// ErrMissingDSN is returned by LoadSink when no connection string is configured.
	ErrMissingDSN = errors.New("load target needs a dsn")
	// ErrVerifyUnsupported is returned when verification is requested for a target other than spanner.
	ErrVerifyUnsupported = errors.New("verification is only supported for spanner")
)

// ScriptSink opens the configured output and returns a script sink over it.
func (s *ServiceOptions) ScriptSink(ctx context.Context, stdout io.Writer) (contracts.Sink, *dialect.Dialect, error) {
	d, err := s.ScriptDialect()
	if err != nil {
		return nil, nil, err
	}
	w, err := s.openOutput(ctx, s.Config.Output, stdout)
	if err != nil {
		return nil, nil, err
	}

	var opts []script.Option
	if s.Config.ExtendedInsert > 1 {
		opts = append(opts, script.WithExtendedInsert(s.Config.ExtendedInsert))
	}
	return script.New(w, d, opts...), d, nil
}

// WorkbookSink opens the configured output and returns an xlsx sink over it.
func (s *ServiceOptions) WorkbookSink(ctx context.Context, stdout io.Writer) (contracts.Sink, *dialect.Dialect, error) {
	d, err := s.ScriptDialect()
	if err != nil {
		return nil, nil, err
	}
	w, err := s.openOutput(ctx, s.Config.Output, stdout)
	if err != nil {
		return nil, nil, err
	}
	return workbook.New(w), d, nil
}

// LoadSink connects to the configured target database and returns a sink that
// writes straight into it, along with the dialect statements must be rendered in.
func (s *ServiceOptions) LoadSink(ctx context.Context) (contracts.Sink, *dialect.Dialect, error) {
	d, err := dialect.Lookup(s.Config.Target)
	if err != nil {
		return nil, nil, err
	}
	dsn := s.Config.DSN
	if dsn == "" && d == dialect.Spanner {
		dsn = s.Config.SpannerDatabase
	}
	if dsn == "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingDSN, d.Name())
	}

	switch d {
	case dialect.SQLite:
		db, err := sqlexec.Open(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		s.OnClose(db.Close)
		return sqlexec.New(db), d, nil

	case dialect.MySQL:
		db, err := gormexec.Open(dsn, s.Logger.WithField("module", "gorm"))
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		s.OnClose(sqlDB.Close)
		return gormexec.New(db), d, nil

	case dialect.Postgres:
		conn, err := pgcopy.Connect(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		s.OnClose(func() error { return conn.Close(context.Background()) })
		return pgcopy.New(pgcopy.FromPgx(conn), pgcopy.DefaultBatchSize), d, nil

	default:
		client, err := s.spannerClient(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		comm := committer.NewCommitter(client, committer.DefaultBatchSize)
		return spannerload.New(comm), d, nil
	}
}

// VerifyLoad compares the rows loaded into Spanner against the expected counts.
func (s *ServiceOptions) VerifyLoad(ctx context.Context, expected map[string]int64) (*spannerload.Report, error) {
	if s.Config.Target != dialect.Spanner.Name() {
		return nil, fmt.Errorf("%w: target %q", ErrVerifyUnsupported, s.Config.Target)
	}
	dsn := s.Config.DSN
	if dsn == "" {
		dsn = s.Config.SpannerDatabase
	}
	client, err := s.spannerClient(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return spannerload.Verify(ctx, spannerload.NewClientCounter(client), models.Tables(), expected)
}

func (s *ServiceOptions) spannerClient(ctx context.Context, database string) (*spanner.Client, error) {
	if s.spanner != nil {
		return s.spanner, nil
	}
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	s.spanner = client
	s.OnClose(func() error {
		client.Close()
		return nil
	})
	return client, nil
}

func (s *ServiceOptions) openOutput(ctx context.Context, target string, stdout io.Writer) (io.Writer, error) {
	w, err := output.Open(ctx, target, stdout, output.CredentialsFromJSON(s.Config.GCSCredentialsJSON)...)
	if err != nil {
		return nil, err
	}
	s.OnClose(w.Close)
	return w, nil
}
