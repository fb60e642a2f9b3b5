package payment

import (
	"context"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// Ledger aggregates an invoice's payment history into paid and remaining
// amounts. Pure aggregation, no mutation.
type Ledger struct {
	repo Repository
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// TotalPaid returns the sum of all payment amounts recorded for the invoice.
func (l *Ledger) TotalPaid(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	return l.repo.SumByInvoice(ctx, invoiceID)
}

// Remaining returns the invoice total minus the paid total, floored at zero.
// The floor is for display only; payment validation works on the unclamped
// difference.
func (l *Ledger) Remaining(ctx context.Context, inv *invoice.Invoice) (decimal.Decimal, error) {
	totalPaid, err := l.TotalPaid(ctx, inv.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return RemainingBalance(inv.Total, totalPaid), nil
}

// RemainingBalance returns total minus paid, floored at zero. Every
// remaining-balance field presented to callers goes through this helper.
func RemainingBalance(total, paid decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
