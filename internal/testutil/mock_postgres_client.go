package testutil

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil)

// MockPostgresClient backs services with in-memory stores instead of a real
// database. WithTx serializes callers through a mutex, which mirrors the
// effect of serializable isolation closely enough for concurrency tests: two
// transactions never interleave their reads and writes.
type MockPostgresClient struct {
	mu     sync.Mutex
	logger *logger.Logger
}

func NewMockPostgresClient(logger *logger.Logger) postgres.IClient {
	return &MockPostgresClient{logger: logger}
}

func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if tx, ok := ctx.Value(txMarkerKey{}).(bool); ok && tx {
		return fn(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(context.WithValue(ctx, txMarkerKey{}, true))
}

func (c *MockPostgresClient) TxFromContext(ctx context.Context) *sqlx.Tx {
	return nil
}

func (c *MockPostgresClient) Querier(ctx context.Context) postgres.Querier {
	return nil
}

type txMarkerKey struct{}
