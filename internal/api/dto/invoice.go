package dto

import (
	"time"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents the request payload for raising an invoice
// against a contract. The subtotal comes from the contract's rent; callers
// only choose the due date.
type CreateInvoiceRequest struct {
	// due_date is the date by which payment is expected; its month scopes the
	// invoice number sequence
	DueDate time.Time `json:"due_date" validate:"required" time_format:"2006-01-02"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	*invoice.Invoice

	// total_paid is the sum of recorded payments
	TotalPaid decimal.Decimal `json:"total_paid"`

	// remaining_balance is total minus total_paid, floored at zero
	RemainingBalance decimal.Decimal `json:"remaining_balance"`

	// payments lists the invoice's payment history when expanded
	Payments []*PaymentResponse `json:"payments,omitempty"`
}

func NewInvoiceResponse(inv *invoice.Invoice, totalPaid decimal.Decimal) *InvoiceResponse {
	return &InvoiceResponse{
		Invoice:          inv,
		TotalPaid:        totalPaid,
		RemainingBalance: payment.RemainingBalance(inv.Total, totalPaid),
	}
}

// PaginationResponse carries listing metadata
type PaginationResponse struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListInvoicesResponse represents an invoice listing for a contract
type ListInvoicesResponse struct {
	Items      []*InvoiceResponse `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}
