package db

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pool operations repositories depend on.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Pool is the connection pool surface DB wraps. *pgxpool.Pool satisfies it.
type Pool interface {
	Querier
	Ping(ctx context.Context) error
	Close()
}

// DB wraps a connection pool and retries transient (connection-class)
// failures a fixed number of times with a fixed backoff between attempts.
// Server-reported errors and context cancellation are never retried, so
// wrapping is safe only because every query in this service is read-only
// or an idempotent single-row write keyed by primary id.
type DB struct {
	pool     Pool
	attempts int
	backoff  time.Duration
}

// Connect opens a pgx connection pool and wraps it in a retrying DB.
func Connect(ctx context.Context, url string, attempts int, backoff time.Duration) (*DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return New(pool, attempts, backoff), nil
}

// New wraps an existing pool. attempts below 1 is treated as 1.
func New(pool Pool, attempts int, backoff time.Duration) *DB {
	if attempts < 1 {
		attempts = 1
	}
	return &DB{pool: pool, attempts: attempts, backoff: backoff}
}

// Query runs a query, retrying transient failures.
func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	var rows pgx.Rows
	err := d.retry(ctx, func() error {
		var err error
		rows, err = d.pool.Query(ctx, sql, args...)
		return err
	})
	return rows, err
}

// QueryRow returns a row whose Scan re-issues the whole query on transient
// failure. pgx defers row errors to Scan, so the retry has to live there.
func (d *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &retryRow{db: d, ctx: ctx, sql: sql, args: args}
}

// Exec runs a statement, retrying transient failures.
func (d *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	var tag pgconn.CommandTag
	err := d.retry(ctx, func() error {
		var err error
		tag, err = d.pool.Exec(ctx, sql, args...)
		return err
	})
	return tag, err
}

// Ping checks connectivity without retrying.
func (d *DB) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Close releases the underlying pool.
func (d *DB) Close() {
	d.pool.Close()
}

type retryRow struct {
	db   *DB
	ctx  context.Context
	sql  string
	args []any
}

func (r *retryRow) Scan(dest ...any) error {
	return r.db.retry(r.ctx, func() error {
		return r.db.pool.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...)
	})
}

func (d *DB) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil || attempt >= d.attempts || !isTransient(err) {
			return err
		}
		slog.Warn("database query failed, retrying",
			"attempt", attempt, "maxAttempts", d.attempts, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.backoff):
		}
	}
}

// isTransient reports whether an error looks like a connection fault worth
// retrying. Anything the server actually answered (including constraint
// violations and pgx.ErrNoRows) is a logical failure and must not be retried.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
