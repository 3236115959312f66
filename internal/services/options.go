package services

import (
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/salesgen/internal/app/dataset/contracts"
	"github.com/light-bringer/salesgen/internal/app/dataset/domain"
	"github.com/light-bringer/salesgen/internal/app/dataset/fakedata"
	"github.com/light-bringer/salesgen/internal/app/dataset/repo"
	"github.com/light-bringer/salesgen/internal/app/dataset/usecases/generate_dataset"
	"github.com/light-bringer/salesgen/internal/config"
	"github.com/light-bringer/salesgen/internal/pkg/clock"
	"github.com/light-bringer/salesgen/internal/pkg/dialect"
	"github.com/light-bringer/salesgen/internal/pkg/randsrc"
)

// ServiceOptions holds all dependencies for one salesgen invocation.
type ServiceOptions struct {
	Config *config.Config
	Logger *logrus.Entry
	Clock  clock.Clock
	Seed   uint64
	RunID  string

	spanner *spanner.Client
	closers []func() error
}

// NewServiceOptions resolves the seed and run id and tags the logger with them.
// A zero configured seed is derived from the clock.
func NewServiceOptions(cfg *config.Config, logger *logrus.Logger, clk clock.Clock) *ServiceOptions {
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.SeedFrom(clk)
	}
	runID := uuid.NewString()

	return &ServiceOptions{
		Config: cfg,
		Logger: logger.WithFields(logrus.Fields{
			"run_id": runID,
			"seed":   seed,
		}),
		Clock: clk,
		Seed:  seed,
		RunID: runID,
	}
}

// Params converts the configuration into generation parameters.
func (s *ServiceOptions) Params() (domain.Params, error) {
	return s.Config.ToParams()
}

// ScriptDialect returns the dialect configured for text output.
func (s *ServiceOptions) ScriptDialect() (*dialect.Dialect, error) {
	return dialect.Lookup(s.Config.Dialect)
}

// GenerateDataset wires a generate_dataset interactor writing to sink.
// Every call gets a fresh random source, so equal seeds give equal runs.
func (s *ServiceOptions) GenerateDataset(d *dialect.Dialect, sink contracts.Sink) *generate_dataset.Interactor {
	rnd := randsrc.New(s.Seed)
	return generate_dataset.NewInteractor(
		repo.NewStatementRepo(d),
		sink,
		rnd,
		fakedata.New(rnd),
		s.Clock,
		s.Logger.WithField("dialect", d.Name()),
	)
}

// OnClose registers a cleanup function. Close runs them in reverse order.
func (s *ServiceOptions) OnClose(fn func() error) {
	s.closers = append(s.closers, fn)
}

// Close releases every registered resource and joins their errors.
func (s *ServiceOptions) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close resources: %w", err)
	}
	return nil
}
