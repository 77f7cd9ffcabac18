package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

const (
	// DriverPostgres is the pgx database/sql driver
	DriverPostgres = "pgx"
	// DriverSQLite is the pure-Go modernc driver
	DriverSQLite = "sqlite"
)

// Config holds relational store connection settings
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

// DB is a relational store for employers and vacancies
type DB struct {
	db     *sqlx.DB
	driver string
	logger *logging.Logger
}

var _ repository.Store = (*DB)(nil)

// Open connects and verifies the store
func Open(ctx context.Context, cfg Config, logger *logging.Logger) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverPostgres
	}

	dsn := cfg.DSN
	if dsn == "" {
		return nil, fmt.Errorf("sqlstore: dsn is required")
	}

	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", driver, err)
	}

	return &DB{db: db, driver: driver, logger: logging.OrNop(logger)}, nil
}

// Driver reports the database/sql driver name in use
func (d *DB) Driver() string {
	return d.driver
}

// Close releases every pooled connection
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Session acquires one dedicated connection. The caller must Close it.
func (d *DB) Session(ctx context.Context) (repository.Session, error) {
	conn, err := d.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: acquire connection: %w", err)
	}

	return &Session{
		conn:   conn,
		bind:   sqlx.BindType(d.driver),
		driver: d.driver,
		logger: d.logger,
	}, nil
}

// sqliteDSN turns on foreign keys and a busy timeout for every pooled connection
func sqliteDSN(dsn string) string {
	pragmas := []string{"_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"}

	for _, p := range pragmas {
		name := p[:strings.Index(p, "(")]
		if strings.Contains(dsn, name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p
	}

	return dsn
}
