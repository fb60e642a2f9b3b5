package invoice

import (
	"context"

	"github.com/leaseflow/leaseflow/internal/types"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create creates a new invoice. Implementations must surface a unique
	// invoice_number violation as a Conflict error so callers can retry.
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// Update updates an existing invoice
	Update(ctx context.Context, invoice *Invoice) error

	// ListByContract retrieves invoices for a contract, newest first
	ListByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) ([]*Invoice, error)

	// CountByContract returns the number of invoices matching the filter
	CountByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) (int, error)

	// MaxInvoiceNumberWithPrefix returns the lexicographically greatest
	// invoice number sharing the given prefix, or "" when none exists.
	MaxInvoiceNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
