package types

import (
	"time"

	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle.
//
// The state machine is one-way: PENDING moves to PARTIALLY_PAID on an
// under-paying payment and to PAID on a payment that closes the balance;
// PARTIALLY_PAID can only move to PAID. PAID is terminal. CANCELLED is an
// absorbing state applied outside the payment path and blocks all further
// payments. OVERDUE is declared for completeness but never assigned by the
// invoice core; only an external scheduled process could apply it.
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "PENDING"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusPending,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition. Payment recording is the only in-core writer and is
// restricted to the payment transitions; cancellation and overdue marking are
// applied externally. Overdue invoices still accept payments.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	allowedTransitions := map[InvoiceStatus][]InvoiceStatus{
		InvoiceStatusPending: {
			InvoiceStatusPartiallyPaid,
			InvoiceStatusPaid,
			InvoiceStatusOverdue,
			InvoiceStatusCancelled,
		},
		InvoiceStatusPartiallyPaid: {
			InvoiceStatusPartiallyPaid,
			InvoiceStatusPaid,
			InvoiceStatusOverdue,
		},
		InvoiceStatusOverdue: {
			InvoiceStatusPartiallyPaid,
			InvoiceStatusPaid,
			InvoiceStatusCancelled,
		},
	}
	return lo.Contains(allowedTransitions[s], target)
}

const (
	// InvoiceDefaultListLimit is applied when a list request carries no limit
	InvoiceDefaultListLimit = 50
	// InvoiceMaxListLimit caps the page size of invoice listings
	InvoiceMaxListLimit = 100
	// NoLimit disables pagination for internal full scans
	NoLimit = -1
)

// NewNoLimitInvoiceFilter returns a filter that fetches every invoice for a
// contract. Internal use only; list requests validate limits into 1..100.
func NewNoLimitInvoiceFilter() *InvoiceFilter {
	limit := NoLimit
	return &InvoiceFilter{Limit: &limit}
}

// InvoiceFilter narrows invoice listings for a contract
type InvoiceFilter struct {
	Status   *InvoiceStatus `form:"status"`
	FromDate *time.Time     `form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time     `form:"to_date" time_format:"2006-01-02"`
	Limit    *int           `form:"limit"`
	Offset   *int           `form:"offset"`
}

func (f *InvoiceFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}

	if f.FromDate != nil && f.ToDate != nil && f.ToDate.Before(*f.FromDate) {
		return ierr.NewError("invalid date range").
			WithHint("to_date must not be before from_date").
			Mark(ierr.ErrValidation)
	}

	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > InvoiceMaxListLimit) {
		return ierr.NewError("invalid limit").
			WithHintf("limit must be between 1 and %d", InvoiceMaxListLimit).
			Mark(ierr.ErrValidation)
	}

	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("offset must not be negative").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// GetLimit returns the page size, applying the default when unset
func (f *InvoiceFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return InvoiceDefaultListLimit
	}
	return *f.Limit
}

func (f *InvoiceFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}
