package contract

import "context"

// Repository defines the interface for contract persistence operations
type Repository interface {
	// Create creates a new contract
	Create(ctx context.Context, contract *Contract) error

	// Get retrieves a contract by ID
	Get(ctx context.Context, id string) (*Contract, error)

	// List retrieves all contracts for the tenant in context
	List(ctx context.Context) ([]*Contract, error)

	// Update updates an existing contract
	Update(ctx context.Context, contract *Contract) error
}
