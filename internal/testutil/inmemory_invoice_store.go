package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
)

var _ invoice.Repository = (*InMemoryInvoiceStore)(nil)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]*invoice.Invoice),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	cp := *inv
	if inv.PaidAt != nil {
		paidAt := *inv.PaidAt
		cp.PaidAt = &paidAt
	}
	return &cp
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.invoices {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return ierr.NewError("duplicate invoice number").
				WithHint("Invoice number was taken by a concurrent request, please retry").
				WithReportableDetails(map[string]any{
					"invoice_number": inv.InvoiceNumber,
				}).
				Mark(ierr.ErrConflict)
		}
	}

	s.invoices[inv.ID] = copyInvoice(inv)
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, exists := s.invoices[id]
	if !exists {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoices[inv.ID]; !exists {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	s.invoices[inv.ID] = copyInvoice(inv)
	return nil
}

func (s *InMemoryInvoiceStore) ListByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchContract(ctx, contractID, filter)

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if filter.GetLimit() > 0 {
		offset := filter.GetOffset()
		if offset >= len(matched) {
			return []*invoice.Invoice{}, nil
		}
		end := offset + filter.GetLimit()
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[offset:end]
	}

	return matched, nil
}

func (s *InMemoryInvoiceStore) CountByContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matchContract(ctx, contractID, filter)), nil
}

func (s *InMemoryInvoiceStore) MaxInvoiceNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max := ""
	for _, inv := range s.invoices {
		if strings.HasPrefix(inv.InvoiceNumber, prefix) && inv.InvoiceNumber > max {
			max = inv.InvoiceNumber
		}
	}
	return max, nil
}

func (s *InMemoryInvoiceStore) matchContract(ctx context.Context, contractID string, filter *types.InvoiceFilter) []*invoice.Invoice {
	tenantID := types.GetTenantID(ctx)
	matched := make([]*invoice.Invoice, 0)

	for _, inv := range s.invoices {
		if inv.ContractID != contractID || inv.TenantID != tenantID {
			continue
		}
		if filter != nil {
			if filter.Status != nil && inv.Status != *filter.Status {
				continue
			}
			if filter.FromDate != nil && inv.DueDate.Before(*filter.FromDate) {
				continue
			}
			if filter.ToDate != nil && inv.DueDate.After(*filter.ToDate) {
				continue
			}
		}
		matched = append(matched, copyInvoice(inv))
	}
	return matched
}
