package employer

import (
	"context"

	"github.com/honeycarbs/career-navigator/internal/domain"
)

// Source represents a remote job board that employers and vacancies are read from.
// Every lookup reports absence instead of failing; callers skip what is missing.
type Source interface {
	// e.g. "hh"
	Name() string

	// Ping reports whether the board is reachable
	Ping(ctx context.Context) bool

	// ResolveEmployerID maps a free-text name to the board's employer id
	ResolveEmployerID(ctx context.Context, name string) (string, bool)

	// Employer loads normalized employer details
	Employer(ctx context.Context, id string) (domain.Employer, bool)

	// Vacancies loads the first page of an employer's vacancies; empty on failure
	Vacancies(ctx context.Context, employerID string, perPage int) []domain.Vacancy
}
