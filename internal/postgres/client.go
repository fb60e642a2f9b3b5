package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/leaseflow/leaseflow/internal/config"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/types"
)

// Querier is the query surface shared by *sqlx.DB and *sqlx.Tx. Repositories
// run against whichever the context provides.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// IClient defines the interface for postgres client operations
type IClient interface {
	// WithTx wraps the given function in a serializable transaction. Nested
	// calls reuse the transaction already in context.
	WithTx(ctx context.Context, fn func(context.Context) error) error

	// TxFromContext returns the transaction from context if it exists
	TxFromContext(ctx context.Context) *sqlx.Tx

	// Querier returns the current transaction if in one, or the database
	Querier(ctx context.Context) Querier
}

// Client wraps sqlx.DB to provide transaction management
type Client struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewDB opens the postgres connection pool, waiting for the database to
// accept connections.
func NewDB(cfg *config.Configuration, log *logger.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to open postgres connection").
			Mark(ierr.ErrDatabase)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	ping := func() error { return db.Ping() }
	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.RetryNotify(ping, bo, func(err error, d time.Duration) {
		log.Warnw("postgres not ready, retrying", "error", err, "backoff", d)
	}); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to reach postgres").
			Mark(ierr.ErrDatabase)
	}

	return db, nil
}

// NewClient creates a new client wrapper with transaction management
func NewClient(db *sqlx.DB, logger *logger.Logger) IClient {
	return &Client{db: db, logger: logger}
}

// WithTx wraps the given function in a transaction. Serializable isolation
// backs the read-then-write sections of invoice numbering and payment
// recording; a serialization failure surfaces as a Conflict the caller may
// retry verbatim.
func (c *Client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// If we're already in a transaction, reuse it and do not start a new one
	if tx := c.TxFromContext(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := c.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to start transaction").
			Mark(ierr.ErrDatabase)
	}

	// Ensure transaction is rolled back on panic
	defer func() {
		if v := recover(); v != nil {
			c.logger.Errorw("rolling back transaction due to panic", "panic", v)
			_ = tx.Rollback()
			panic(v)
		}
	}()

	txCtx := context.WithValue(ctx, types.CtxDBTransaction, tx)

	if err := fn(txCtx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			c.logger.Errorw("failed to roll back transaction", "error", rerr)
		}
		// Postgres can raise 40001 on any in-transaction statement, not just
		// at commit. The pq error survives repository wrapping, so recover
		// the Conflict kind here rather than surfacing a database error.
		if IsSerializationFailure(err) {
			return ierr.WithError(err).
				WithHint("The operation conflicted with a concurrent update, please retry").
				Mark(ierr.ErrConflict)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return ierr.WithError(err).
				WithHint("The operation conflicted with a concurrent update, please retry").
				Mark(ierr.ErrConflict)
		}
		return ierr.WithError(err).
			WithHint("Failed to commit transaction").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// TxFromContext returns the transaction from context if it exists
func (c *Client) TxFromContext(ctx context.Context) *sqlx.Tx {
	if tx, ok := ctx.Value(types.CtxDBTransaction).(*sqlx.Tx); ok {
		return tx
	}
	return nil
}

// Querier returns the current transaction if in a transaction, or the db
func (c *Client) Querier(ctx context.Context) Querier {
	if tx := c.TxFromContext(ctx); tx != nil {
		return tx
	}
	return c.db
}

// IsSerializationFailure reports whether err is a postgres serialization
// conflict (SQLSTATE 40001).
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		return pqErr.Code == "40001"
	}
	return false
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505), optionally on a specific constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		if pqErr.Code != "23505" {
			return false
		}
		return constraint == "" || pqErr.Constraint == constraint
	}
	return false
}
