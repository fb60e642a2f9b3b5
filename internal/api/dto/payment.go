package dto

import (
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/leaseflow/leaseflow/internal/validator"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest represents the request payload for recording a payment
// against an invoice. Amount bounds are business rules checked against the
// invoice's remaining balance, not request-shape validation.
type RecordPaymentRequest struct {
	// amount is the payment value, two decimal places
	Amount decimal.Decimal `json:"amount"`

	// payment_method is how the payment was made
	PaymentMethod types.PaymentMethod `json:"payment_method" validate:"required"`

	// reference_number is an optional external reference, e.g. a bank slip id
	ReferenceNumber *string `json:"reference_number,omitempty" validate:"omitempty,max=255"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	*payment.Payment

	// invoice carries the post-payment invoice state when the payment was
	// just recorded; empty in payment history listings
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
}

func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{Payment: p}
}

func NewPaymentResponseList(payments []*payment.Payment) []*PaymentResponse {
	items := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = NewPaymentResponse(p)
	}
	return items
}
