package postgres

import (
	"context"
	"database/sql"

	"github.com/leaseflow/leaseflow/internal/domain/contract"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	"github.com/leaseflow/leaseflow/internal/types"
)

type contractRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewContractRepository(db postgres.IClient, logger *logger.Logger) contract.Repository {
	return &contractRepository{db: db, logger: logger}
}

func (r *contractRepository) Create(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (
			id, tenant_id, unit_name, customer_name, rent_amount,
			start_date, end_date, status, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :unit_name, :customer_name, :rent_amount,
			:start_date, :end_date, :status, :created_at, :updated_at
		)`

	if _, err := r.db.Querier(ctx).NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create contract").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *contractRepository) Get(ctx context.Context, id string) (*contract.Contract, error) {
	// Lookup is by id alone; the service layer enforces tenant ownership so
	// a cross-tenant id surfaces as an invalid-state error rather than 404.
	var c contract.Contract
	query := `SELECT * FROM contracts WHERE id = $1`

	err := r.db.Querier(ctx).GetContext(ctx, &c, query, id)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get contract").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *contractRepository) List(ctx context.Context) ([]*contract.Contract, error) {
	contracts := []*contract.Contract{}
	query := `SELECT * FROM contracts WHERE tenant_id = $1 ORDER BY created_at DESC, id DESC`

	if err := r.db.Querier(ctx).SelectContext(ctx, &contracts, query, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts").
			Mark(ierr.ErrDatabase)
	}
	return contracts, nil
}

func (r *contractRepository) Update(ctx context.Context, c *contract.Contract) error {
	query := `
		UPDATE contracts SET
			unit_name = :unit_name,
			customer_name = :customer_name,
			rent_amount = :rent_amount,
			start_date = :start_date,
			end_date = :end_date,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.Querier(ctx).NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update contract").
			Mark(ierr.ErrDatabase)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
