package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/leaseflow/leaseflow/internal/domain/payment"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/shopspring/decimal"
)

var _ payment.Repository = (*InMemoryPaymentStore)(nil)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	mu       sync.RWMutex
	payments map[string]*payment.Payment
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		payments: make(map[string]*payment.Payment),
	}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}
	cp := *p
	if p.ReferenceNumber != nil {
		ref := *p.ReferenceNumber
		cp.ReferenceNumber = &ref
	}
	return &cp
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[p.ID]; exists {
		return ierr.NewError("payment already exists").
			WithHintf("Payment with ID %s already exists", p.ID).
			Mark(ierr.ErrAlreadyExists)
	}
	s.payments[p.ID] = copyPayment(p)
	return nil
}

func (s *InMemoryPaymentStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]*payment.Payment, 0)
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			payments = append(payments, copyPayment(p))
		}
	}

	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].PaidAt.Equal(payments[j].PaidAt) {
			return payments[i].PaidAt.Before(payments[j].PaidAt)
		}
		return payments[i].ID < payments[j].ID
	})
	return payments, nil
}

func (s *InMemoryPaymentStore) SumByInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}
