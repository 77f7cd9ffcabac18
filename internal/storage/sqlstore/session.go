package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/honeycarbs/career-navigator/internal/domain"
	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// Session runs every statement on one connection in autocommit mode
type Session struct {
	conn   *sqlx.Conn
	bind   int
	driver string
	logger *logging.Logger
}

var _ repository.Session = (*Session)(nil)

// Close returns the connection to the pool
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) rebind(query string) string {
	return sqlx.Rebind(s.bind, query)
}

// SaveEmployer inserts e unless an employer with the same id exists
func (s *Session) SaveEmployer(ctx context.Context, e domain.Employer) (bool, error) {
	const q = `INSERT INTO employers (id, name, location, website)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	res, err := s.conn.ExecContext(ctx, s.rebind(q), e.ID, e.Name, e.Location, e.Website)
	if err != nil {
		return false, fmt.Errorf("sqlstore: save employer %s: %w", e.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlstore: save employer %s: rows affected: %w", e.ID, err)
	}

	return n > 0, nil
}

// SaveVacancy inserts v unless a vacancy with the same id exists.
// A missing employer surfaces as a foreign key error.
func (s *Session) SaveVacancy(ctx context.Context, v domain.Vacancy) (bool, error) {
	const q = `INSERT INTO vacancies (id, employer_id, title, min_salary, max_salary, currency, url, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	res, err := s.conn.ExecContext(ctx, s.rebind(q),
		v.ID, v.EmployerID, v.Title, v.MinSalary, v.MaxSalary, v.Currency, v.URL, v.Description,
	)
	if err != nil {
		return false, fmt.Errorf("sqlstore: save vacancy %s: %w", v.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlstore: save vacancy %s: rows affected: %w", v.ID, err)
	}

	return n > 0, nil
}

// escapeLike escapes LIKE metacharacters so the keyword matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
