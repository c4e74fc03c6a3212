package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/lib/pq"
)

func (d *implDatabase) Do(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	var err error
	var failed *sql.DB
	for attempt := 0; attempt <= d.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if rerr := d.reconnect(ctx, failed); rerr != nil {
				return fmt.Errorf("%w (reconnect failed: %v)", err, rerr)
			}
		}
		db := d.current()
		err = fn(ctx, db)
		if err == nil || !d.retryable(err, db) {
			return err
		}
		failed = db
		d.l.Warnf(ctx, "pkg.postgre.Do: connection error on attempt %d: %v", attempt+1, err)
	}
	return err
}

func (d *implDatabase) Tx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	var tx *sql.Tx
	var err error
	var failed *sql.DB
	for attempt := 0; attempt <= d.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if rerr := d.reconnect(ctx, failed); rerr != nil {
				return fmt.Errorf("begin transaction: %w (reconnect failed: %v)", err, rerr)
			}
		}
		db := d.current()
		tx, err = db.BeginTx(ctx, nil)
		if err == nil || !d.retryable(err, db) {
			break
		}
		failed = db
		d.l.Warnf(ctx, "pkg.postgre.Tx: begin failed on attempt %d: %v", attempt+1, err)
	}
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.l.Errorf(ctx, "pkg.postgre.Tx: rollback failed: %v", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (d *implDatabase) Ping(ctx context.Context) error {
	return d.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.PingContext(ctx)
	})
}

func (d *implDatabase) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

func (d *implDatabase) current() *sql.DB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.db
}

// retryable reports whether err came from a dead pool: a broken connection,
// or a pool that a concurrent reconnect closed while fn was using it.
func (d *implDatabase) retryable(err error, used *sql.DB) bool {
	if IsConnectionError(err) {
		return true
	}
	return isPoolClosed(err) && d.current() != used
}

// reconnect replaces the failed pool with a freshly opened one. Reconnects are
// serialized; when another caller already replaced failed, its pool is reused.
func (d *implDatabase) reconnect(ctx context.Context, failed *sql.DB) error {
	if d.open == nil {
		return ErrReconnectDisabled
	}

	d.reconnectMu.Lock()
	defer d.reconnectMu.Unlock()

	if d.current() != failed {
		return nil
	}

	db, err := d.open(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	old := d.db
	d.db = db
	d.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	d.l.Infof(ctx, "pkg.postgre.reconnect: connection pool recreated")
	return nil
}

func isPoolClosed(err error) bool {
	return err != nil && strings.Contains(err.Error(), errDatabaseClosed)
}

// IsConnectionError reports whether err means the connection itself is unusable.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 08: connection exception. 57P01..57P03: admin shutdown / cannot connect now.
		if pqErr.Code.Class() == "08" {
			return true
		}
		switch pqErr.Code {
		case "57P01", "57P02", "57P03":
			return true
		}
	}
	return false
}
