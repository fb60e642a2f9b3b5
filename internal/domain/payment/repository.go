package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the interface for payment persistence operations
type Repository interface {
	// Create records a new payment
	Create(ctx context.Context, payment *Payment) error

	// ListByInvoice retrieves all payments for an invoice, oldest first
	ListByInvoice(ctx context.Context, invoiceID string) ([]*Payment, error)

	// SumByInvoice returns the sum of payment amounts for an invoice
	SumByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error)
}
