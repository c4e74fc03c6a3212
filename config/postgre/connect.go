package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chatbot-srv/config"
	"chatbot-srv/pkg/log"
	pkgPostgre "chatbot-srv/pkg/postgre"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxIdleConns is the maximum number of idle connections in the pool
	defaultMaxIdleConns = 25
	// defaultMaxOpenConns is the maximum number of open connections to the database
	defaultMaxOpenConns = 200
	// defaultConnMaxLifetime is the maximum amount of time a connection may be reused
	defaultConnMaxLifetime = 30 * time.Minute
	// defaultConnMaxIdleTime is the maximum amount of time a connection may be idle
	defaultConnMaxIdleTime = 5 * time.Minute
)

// Connect opens a PostgreSQL pool and wraps it in a reconnecting handle.
// The caller owns the handle and must Close it.
func Connect(ctx context.Context, cfg config.PostgresConfig, l log.Logger) (pkgPostgre.IDatabase, error) {
	return pkgPostgre.New(ctx, Opener(cfg), pkgPostgre.Config{MaxRetries: cfg.MaxRetries}, l)
}

// Opener returns a function that opens and pings a new pool for cfg.
func Opener(cfg config.PostgresConfig) pkgPostgre.Opener {
	dsn := DSN(cfg)
	return func(ctx context.Context) (*sql.DB, error) {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
		}

		db.SetMaxIdleConns(defaultMaxIdleConns)
		db.SetMaxOpenConns(defaultMaxOpenConns)
		db.SetConnMaxLifetime(defaultConnMaxLifetime)
		db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

		if err := db.PingContext(connectCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
		}
		return db, nil
	}
}

// DSN builds a lib/pq keyword/value connection string.
// Supported ssl modes: disable, require, verify-ca, verify-full
func DSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	searchPath := cfg.Schema
	if searchPath == "" {
		searchPath = "public"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode, searchPath)
}
