package payment

import (
	"time"

	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// Payment represents a payment recorded against an invoice. Payments are
// append-only: never mutated or deleted once recorded.
type Payment struct {
	ID              string              `db:"id" json:"id"`
	InvoiceID       string              `db:"invoice_id" json:"invoice_id"`
	Amount          decimal.Decimal     `db:"amount" json:"amount"`
	PaymentMethod   types.PaymentMethod `db:"payment_method" json:"payment_method"`
	ReferenceNumber *string             `db:"reference_number" json:"reference_number,omitempty"`
	PaidAt          time.Time           `db:"paid_at" json:"paid_at"`

	types.BaseModel
}

func (p *Payment) Validate() error {
	if p.InvoiceID == "" {
		return ierr.NewError("invalid invoice id").
			WithHint("Invoice id must be set").
			Mark(ierr.ErrValidation)
	}

	if !p.Amount.IsPositive() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}

	if err := p.PaymentMethod.Validate(); err != nil {
		return err
	}

	return nil
}
