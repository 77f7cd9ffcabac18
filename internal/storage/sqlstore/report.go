package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/honeycarbs/career-navigator/internal/domain"
)

const listingColumns = `SELECT e.name AS company, v.title, v.min_salary, v.max_salary, v.currency, v.url
	FROM vacancies v
	JOIN employers e ON e.id = v.employer_id`

const listingOrder = ` ORDER BY e.name, v.title, v.id`

const averageExpr = `SELECT CAST(AVG((min_salary + max_salary) / 2.0) AS DOUBLE PRECISION)
	FROM vacancies
	WHERE min_salary IS NOT NULL AND max_salary IS NOT NULL`

// CompaniesWithVacancyCounts lists every employer, including those without vacancies
func (s *Session) CompaniesWithVacancyCounts(ctx context.Context) []domain.CompanyVacancies {
	const q = `SELECT e.name AS name, COUNT(v.id) AS vacancy_count
		FROM employers e
		LEFT JOIN vacancies v ON v.employer_id = e.id
		GROUP BY e.id, e.name
		ORDER BY vacancy_count DESC, e.name ASC`

	out := make([]domain.CompanyVacancies, 0)
	if err := s.conn.SelectContext(ctx, &out, q); err != nil {
		s.logger.Error("company vacancy counts query failed", "err", err)
		return make([]domain.CompanyVacancies, 0)
	}
	return out
}

// AverageSalary is the mean midpoint over vacancies with both bounds.
// ok is false when no such vacancy exists.
func (s *Session) AverageSalary(ctx context.Context) (float64, bool) {
	var avg sql.NullFloat64
	if err := s.conn.GetContext(ctx, &avg, averageExpr); err != nil {
		s.logger.Error("average salary query failed", "err", err)
		return 0, false
	}
	return avg.Float64, avg.Valid
}

// AllVacancies lists every stored vacancy with its company name
func (s *Session) AllVacancies(ctx context.Context) []domain.VacancyListing {
	return s.listings(ctx, "all vacancies", listingColumns+listingOrder)
}

// VacanciesAboveAverage lists vacancies whose midpoint exceeds the current average.
// Vacancies missing a bound never qualify.
func (s *Session) VacanciesAboveAverage(ctx context.Context) []domain.VacancyListing {
	q := listingColumns + `
		WHERE v.min_salary IS NOT NULL AND v.max_salary IS NOT NULL
		AND (v.min_salary + v.max_salary) / 2.0 > (` + averageExpr + `)` + listingOrder

	return s.listings(ctx, "vacancies above average", q)
}

// VacanciesByKeyword matches keyword as a case-insensitive substring of the
// title. The empty keyword is a substring of every title.
func (s *Session) VacanciesByKeyword(ctx context.Context, keyword string) []domain.VacancyListing {
	if keyword == "" {
		return s.AllVacancies(ctx)
	}

	if s.driver != DriverPostgres {
		// SQLite folds case for ASCII only; match in Go so Cyrillic titles behave.
		return filterByTitle(s.AllVacancies(ctx), keyword)
	}

	q := listingColumns + ` WHERE v.title ILIKE ? ESCAPE '\'` + listingOrder
	return s.listings(ctx, "vacancies by keyword", q, "%"+escapeLike(keyword)+"%")
}

func (s *Session) listings(ctx context.Context, name, q string, args ...any) []domain.VacancyListing {
	out := make([]domain.VacancyListing, 0)
	if err := s.conn.SelectContext(ctx, &out, s.rebind(q), args...); err != nil {
		s.logger.Error("listing query failed", "query", name, "err", err)
		return make([]domain.VacancyListing, 0)
	}
	return out
}

func filterByTitle(all []domain.VacancyListing, keyword string) []domain.VacancyListing {
	needle := strings.ToLower(keyword)
	out := make([]domain.VacancyListing, 0)
	for _, l := range all {
		if strings.Contains(strings.ToLower(l.Title), needle) {
			out = append(out, l)
		}
	}
	return out
}
