package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/career-navigator/internal/domain/employer"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

const (
	defaultPageSize = 20
	defaultPacing   = 500 * time.Millisecond
)

var (
	// ErrSourceUnreachable aborts a run before any employer is processed
	ErrSourceUnreachable = errors.New("ingest: job board unreachable")
	// ErrStoreUnavailable aborts a run when no store session can be opened
	ErrStoreUnavailable = errors.New("ingest: store unavailable")
)

// Service loads employers and their vacancies into the store
type Service interface {
	LoadByNames(ctx context.Context, names []string) error
	LoadByIDs(ctx context.Context, ids []string) error
}

// Option configures Service
type Option func(*config)

type config struct {
	source   employer.Source
	store    repository.Store
	logger   *logging.Logger
	pageSize int
	pacing   time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// WithSource sets the job board
func WithSource(source employer.Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithStore sets the store
func WithStore(store repository.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPageSize sets how many vacancies are requested per employer
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithPacing sets the delay between employers
func WithPacing(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.pacing = d
		}
	}
}

// WithSleep replaces the pacing wait
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *config) {
		c.sleep = sleep
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		pageSize: defaultPageSize,
		pacing:   defaultPacing,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("ingest.Service: source is required")
	}
	if cfg.store == nil {
		return nil, fmt.Errorf("ingest.Service: store is required")
	}
	if cfg.sleep == nil {
		cfg.sleep = sleepContext
	}

	return &service{
		source:   cfg.source,
		store:    cfg.store,
		logger:   logging.OrNop(cfg.logger),
		pageSize: cfg.pageSize,
		pacing:   cfg.pacing,
		sleep:    cfg.sleep,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(source employer.Source, store repository.Store, logger *logging.Logger, settings Settings) (Service, error) {
	return NewService(
		WithSource(source),
		WithStore(store),
		WithLogger(logger),
		WithPageSize(settings.PageSize),
		WithPacing(settings.Pacing),
	)
}

// Settings carries tunables that come from configuration
type Settings struct {
	PageSize int
	Pacing   time.Duration
}

type service struct {
	source   employer.Source
	store    repository.Store
	logger   *logging.Logger
	pageSize int
	pacing   time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

type resolveFunc func(ctx context.Context, input string) (string, bool)

// LoadByNames resolves each name to an employer id, then ingests it
func (s *service) LoadByNames(ctx context.Context, names []string) error {
	return s.run(ctx, "names", names, s.source.ResolveEmployerID)
}

// LoadByIDs ingests employers whose ids are already known
func (s *service) LoadByIDs(ctx context.Context, ids []string) error {
	return s.run(ctx, "ids", ids, func(_ context.Context, id string) (string, bool) {
		return id, true
	})
}

type runStats struct {
	processed       int
	skipped         int
	vacanciesSaved  int
	vacanciesFailed int
}

func (s *service) run(ctx context.Context, mode string, inputs []string, resolve resolveFunc) error {
	log := s.logger.With("run_id", uuid.NewString(), "mode", mode, "source", s.source.Name())
	log.Info("ingestion started", "inputs", len(inputs))

	if !s.source.Ping(ctx) {
		log.Error("ingestion aborted: job board unreachable")
		return ErrSourceUnreachable
	}

	var stats runStats
	err := repository.WithSession(ctx, s.store, func(sess repository.Session) error {
		pending := trimInputs(inputs)
		for i, input := range pending {
			if err := ctx.Err(); err != nil {
				return err
			}

			if !s.processEmployer(ctx, sess, log, input, resolve, &stats) {
				stats.skipped++
				continue
			}
			stats.processed++

			if i < len(pending)-1 && s.pacing > 0 {
				if err := s.sleep(ctx, s.pacing); err != nil {
					return err
				}
			}
		}
		return nil
	})

	switch {
	case errors.Is(err, repository.ErrSessionUnavailable):
		log.Error("ingestion aborted: store unavailable", "err", err)
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	case ctx.Err() != nil:
		log.Warn("ingestion cancelled", "err", ctx.Err(), "processed", stats.processed)
		return ctx.Err()
	case err != nil:
		log.Warn("store session closed with error", "err", err)
	}

	log.Info("ingestion finished",
		"processed", stats.processed,
		"skipped", stats.skipped,
		"vacancies_saved", stats.vacanciesSaved,
		"vacancies_failed", stats.vacanciesFailed,
	)
	return nil
}

// processEmployer reports whether the employer reached the vacancy stage
func (s *service) processEmployer(
	ctx context.Context,
	sess repository.Session,
	log *logging.Logger,
	input string,
	resolve resolveFunc,
	stats *runStats,
) bool {
	id, ok := resolve(ctx, input)
	if !ok || id == "" {
		log.Warn("employer skipped: not resolved", "input", input)
		return false
	}

	e, ok := s.source.Employer(ctx, id)
	if !ok {
		log.Warn("employer skipped: no details", "input", input, "employer_id", id)
		return false
	}
	if e.ID == "" {
		e.ID = id
	}

	employerCreated, err := sess.SaveEmployer(ctx, e)
	if err != nil {
		log.Warn("employer skipped: save failed", "employer_id", id, "err", err)
		return false
	}

	vacancies := s.source.Vacancies(ctx, id, s.pageSize)
	saved, created := 0, 0
	for _, v := range vacancies {
		if ctx.Err() != nil {
			break
		}

		isNew, err := sess.SaveVacancy(ctx, v)
		if err != nil {
			stats.vacanciesFailed++
			log.Warn("vacancy skipped: save failed", "employer_id", id, "vacancy_id", v.ID, "err", err)
			continue
		}
		saved++
		if isNew {
			created++
		}
	}
	stats.vacanciesSaved += saved

	log.Info("employer processed",
		"employer_id", id,
		"employer", e.Name,
		"employer_created", employerCreated,
		"vacancies_fetched", len(vacancies),
		"vacancies_saved", saved,
		"vacancies_created", created,
	)
	return true
}

func trimInputs(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if in = strings.TrimSpace(in); in != "" {
			out = append(out, in)
		}
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
