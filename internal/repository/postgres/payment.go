package postgres

import (
	"context"
	"database/sql"

	"github.com/leaseflow/leaseflow/internal/domain/payment"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewPaymentRepository(db postgres.IClient, logger *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			id, invoice_id, amount, payment_method, reference_number,
			paid_at, created_at, updated_at
		) VALUES (
			:id, :invoice_id, :amount, :payment_method, :reference_number,
			:paid_at, :created_at, :updated_at
		)`

	if _, err := r.db.Querier(ctx).NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record payment").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	payments := []*payment.Payment{}
	query := `SELECT * FROM payments WHERE invoice_id = $1 ORDER BY paid_at ASC, id ASC`

	if err := r.db.Querier(ctx).SelectContext(ctx, &payments, query, invoiceID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) SumByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`

	err := r.db.Querier(ctx).GetContext(ctx, &sum, query, invoiceID)
	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to sum payments").
			Mark(ierr.ErrDatabase)
	}
	return sum, nil
}
