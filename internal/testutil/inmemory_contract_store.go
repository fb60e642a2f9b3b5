package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/leaseflow/leaseflow/internal/domain/contract"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
)

var _ contract.Repository = (*InMemoryContractStore)(nil)

// InMemoryContractStore implements contract.Repository
type InMemoryContractStore struct {
	mu        sync.RWMutex
	contracts map[string]*contract.Contract
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{
		contracts: make(map[string]*contract.Contract),
	}
}

func copyContract(c *contract.Contract) *contract.Contract {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *contract.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[c.ID]; exists {
		return ierr.NewError("contract already exists").
			WithHintf("Contract with ID %s already exists", c.ID).
			Mark(ierr.ErrAlreadyExists)
	}
	s.contracts[c.ID] = copyContract(c)
	return nil
}

func (s *InMemoryContractStore) Get(ctx context.Context, id string) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.contracts[id]
	if !exists {
		return nil, ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyContract(c), nil
}

func (s *InMemoryContractStore) List(ctx context.Context) ([]*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenantID := types.GetTenantID(ctx)
	contracts := make([]*contract.Contract, 0)
	for _, c := range s.contracts {
		if c.TenantID == tenantID {
			contracts = append(contracts, copyContract(c))
		}
	}

	sort.Slice(contracts, func(i, j int) bool {
		if !contracts[i].CreatedAt.Equal(contracts[j].CreatedAt) {
			return contracts[i].CreatedAt.After(contracts[j].CreatedAt)
		}
		return contracts[i].ID > contracts[j].ID
	})
	return contracts, nil
}

func (s *InMemoryContractStore) Update(ctx context.Context, c *contract.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[c.ID]; !exists {
		return ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}
	s.contracts[c.ID] = copyContract(c)
	return nil
}
