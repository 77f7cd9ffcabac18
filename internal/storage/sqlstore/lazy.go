package sqlstore

import (
	"context"
	"sync"

	"github.com/honeycarbs/career-navigator/internal/repository"
	"github.com/honeycarbs/career-navigator/pkg/logging"
)

// Lazy opens and migrates the database on the first Session call.
// A failed open is retried by the next call.
type Lazy struct {
	cfg    Config
	logger *logging.Logger

	mu sync.Mutex
	db *DB
}

var _ repository.Store = (*Lazy)(nil)

// NewLazy returns a store that connects on first use
func NewLazy(cfg Config, logger *logging.Logger) *Lazy {
	return &Lazy{cfg: cfg, logger: logging.OrNop(logger)}
}

// DB returns the opened database, connecting and migrating if needed
func (l *Lazy) DB(ctx context.Context) (*DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	db, err := Open(ctx, l.cfg, l.logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	l.db = db
	return db, nil
}

func (l *Lazy) Session(ctx context.Context) (repository.Session, error) {
	db, err := l.DB(ctx)
	if err != nil {
		return nil, err
	}
	return db.Session(ctx)
}

// Close releases the database if it was ever opened
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
