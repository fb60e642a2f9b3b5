package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	"github.com/leaseflow/leaseflow/internal/types"
)

const invoiceNumberUniqueConstraint = "invoices_invoice_number_key"

type invoiceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewInvoiceRepository(db postgres.IClient, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, contract_id, tenant_id, invoice_number, subtotal, tax_amount,
			total, status, due_date, paid_at, created_at, updated_at
		) VALUES (
			:id, :contract_id, :tenant_id, :invoice_number, :subtotal, :tax_amount,
			:total, :status, :due_date, :paid_at, :created_at, :updated_at
		)`

	if _, err := r.db.Querier(ctx).NamedExecContext(ctx, query, inv); err != nil {
		if postgres.IsUniqueViolation(err, invoiceNumberUniqueConstraint) {
			return ierr.WithError(err).
				WithHint("Invoice number was taken by a concurrent request, please retry").
				WithReportableDetails(map[string]any{
					"invoice_number": inv.InvoiceNumber,
				}).
				Mark(ierr.ErrConflict)
		}
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT * FROM invoices WHERE id = $1`

	err := r.db.Querier(ctx).GetContext(ctx, &inv, query, id)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices SET
			status = :status,
			paid_at = :paid_at,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.Querier(ctx).NamedExecContext(ctx, query, inv)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) ListByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	query, args := buildContractQuery(ctx, "SELECT *", contractID, filter)
	query += " ORDER BY created_at DESC, id DESC"
	if filter.GetLimit() > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.GetLimit(), filter.GetOffset())
	}

	invoices := []*invoice.Invoice{}
	if err := r.db.Querier(ctx).SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}

func (r *invoiceRepository) CountByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) (int, error) {
	query, args := buildContractQuery(ctx, "SELECT COUNT(*)", contractID, filter)

	var count int
	if err := r.db.Querier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func buildContractQuery(ctx context.Context, selectClause, contractID string, filter *types.InvoiceFilter) (string, []interface{}) {
	query := selectClause + " FROM invoices WHERE contract_id = $1 AND tenant_id = $2"
	args := []interface{}{contractID, types.GetTenantID(ctx)}

	if filter == nil {
		return query, args
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}

	return query, args
}

// MaxInvoiceNumberWithPrefix returns the greatest invoice number under the
// prefix. The 4-digit zero-padded suffix keeps lexicographic order aligned
// with numeric order.
func (r *invoiceRepository) MaxInvoiceNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	query := `SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1 ORDER BY invoice_number DESC LIMIT 1`

	err := r.db.Querier(ctx).GetContext(ctx, &number, query, prefix+"%")
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to scan invoice number sequence").
			Mark(ierr.ErrDatabase)
	}
	return number, nil
}
