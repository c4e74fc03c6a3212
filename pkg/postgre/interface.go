package postgre

import (
	"context"
	"database/sql"

	"chatbot-srv/pkg/log"
)

// IDatabase is an explicitly owned database handle.
// A call that fails with a connection-class error reopens the pool and runs again, up to MaxRetries times.
// Implementations are safe for concurrent use.
type IDatabase interface {
	// Do runs fn against the current pool.
	Do(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error
	// Tx runs fn inside one transaction. fn's error rolls back; otherwise commits.
	// Only a failure to begin the transaction is retried.
	Tx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error
	Ping(ctx context.Context) error
	Close() error
}

// Opener opens and verifies a new pool.
type Opener func(ctx context.Context) (*sql.DB, error)

// New creates a handle and opens the first pool.
func New(ctx context.Context, open Opener, cfg Config, l log.Logger) (IDatabase, error) {
	db, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, open, cfg, l), nil
}

// NewWithDB wraps an already opened pool. open is used for reconnects and may be nil to disable them.
func NewWithDB(db *sql.DB, open Opener, cfg Config, l log.Logger) IDatabase {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &implDatabase{
		db:   db,
		open: open,
		cfg:  cfg,
		l:    l,
	}
}
