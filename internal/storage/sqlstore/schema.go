package sqlstore

import (
	"context"
	"fmt"
)

// Statements are portable between PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employers (
		id       VARCHAR(20) PRIMARY KEY,
		name     VARCHAR(255) NOT NULL,
		location VARCHAR(100),
		website  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS vacancies (
		id          VARCHAR(20) PRIMARY KEY,
		employer_id VARCHAR(20) NOT NULL REFERENCES employers(id) ON DELETE CASCADE,
		title       VARCHAR(255) NOT NULL,
		min_salary  INTEGER,
		max_salary  INTEGER,
		currency    VARCHAR(10),
		url         TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vacancies_employer_id ON vacancies (employer_id)`,
}

// Migrate creates the employers and vacancies tables if they do not exist
func (d *DB) Migrate(ctx context.Context) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migrate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit migration: %w", err)
	}

	d.logger.Info("schema ready", "driver", d.driver)
	return nil
}
