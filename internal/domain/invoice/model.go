package invoice

import (
	"time"

	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents an invoice raised against a rental contract. Created
// once by the lifecycle service; only payment recording mutates it (status
// and paid_at), and it is never deleted.
type Invoice struct {
	ID            string              `db:"id" json:"id"`
	ContractID    string              `db:"contract_id" json:"contract_id"`
	TenantID      int64               `db:"tenant_id" json:"tenant_id"`
	InvoiceNumber string              `db:"invoice_number" json:"invoice_number"`
	Subtotal      decimal.Decimal     `db:"subtotal" json:"subtotal"`
	TaxAmount     decimal.Decimal     `db:"tax_amount" json:"tax_amount"`
	Total         decimal.Decimal     `db:"total" json:"total"`
	Status        types.InvoiceStatus `db:"status" json:"status"`
	DueDate       time.Time           `db:"due_date" json:"due_date"`
	PaidAt        *time.Time          `db:"paid_at" json:"paid_at,omitempty"`

	types.BaseModel
}

func (i *Invoice) Validate() error {
	if i.Subtotal.IsNegative() {
		return ierr.NewError("invalid subtotal").
			WithHint("Subtotal must not be negative").
			Mark(ierr.ErrValidation)
	}

	if i.TaxAmount.IsNegative() {
		return ierr.NewError("invalid tax amount").
			WithHint("Tax amount must not be negative").
			Mark(ierr.ErrValidation)
	}

	if !i.Total.Equal(i.Subtotal.Add(i.TaxAmount)) {
		return ierr.NewError("invalid total").
			WithHint("Total must equal subtotal plus tax amount").
			WithReportableDetails(map[string]any{
				"subtotal":   i.Subtotal.String(),
				"tax_amount": i.TaxAmount.String(),
				"total":      i.Total.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if !i.Total.IsPositive() {
		return ierr.NewError("invalid total").
			WithHint("Total must be greater than zero").
			Mark(ierr.ErrValidation)
	}

	if err := i.Status.Validate(); err != nil {
		return err
	}

	if i.InvoiceNumber == "" {
		return ierr.NewError("missing invoice number").
			WithHint("Invoice number must be set").
			Mark(ierr.ErrValidation)
	}

	return nil
}
