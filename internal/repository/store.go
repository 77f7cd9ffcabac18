package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/career-navigator/internal/domain"
)

// IngestRepository defines insert-or-ignore writes. created is false when a
// row with the same id already existed; that case is not an error.
type IngestRepository interface {
	SaveEmployer(ctx context.Context, e domain.Employer) (created bool, err error)
	SaveVacancy(ctx context.Context, v domain.Vacancy) (created bool, err error)
}

// ReportRepository defines read-only aggregates. Failures are logged by the
// implementation and surface as empty results or absence.
type ReportRepository interface {
	CompaniesWithVacancyCounts(ctx context.Context) []domain.CompanyVacancies
	AverageSalary(ctx context.Context) (float64, bool)
	AllVacancies(ctx context.Context) []domain.VacancyListing
	VacanciesAboveAverage(ctx context.Context) []domain.VacancyListing
	VacanciesByKeyword(ctx context.Context, keyword string) []domain.VacancyListing
}

// Session is a scope bound to one dedicated store connection
type Session interface {
	IngestRepository
	ReportRepository
	Close() error
}

// Store hands out sessions
type Store interface {
	Session(ctx context.Context) (Session, error)
}

// ErrSessionUnavailable is returned by WithSession when no session could be opened
var ErrSessionUnavailable = errors.New("repository: session unavailable")

// WithSession opens a session, runs fn and always closes the session
func WithSession(ctx context.Context, store Store, fn func(Session) error) (err error) {
	if store == nil {
		return fmt.Errorf("%w: store is nil", ErrSessionUnavailable)
	}

	s, err := store.Session(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("repository: close session: %w", cerr))
		}
	}()

	return fn(s)
}
