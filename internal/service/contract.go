package service

import (
	"context"

	"github.com/leaseflow/leaseflow/internal/api/dto"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
)

// ContractService manages rental contracts.
type ContractService interface {
	CreateContract(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error)
	GetContract(ctx context.Context, id string) (*dto.ContractResponse, error)
	ListContracts(ctx context.Context) (*dto.ListContractsResponse, error)
	UpdateContractStatus(ctx context.Context, id string, req *dto.UpdateContractStatusRequest) (*dto.ContractResponse, error)
}

type contractService struct {
	ServiceParams
}

func NewContractService(params ServiceParams) ContractService {
	return &contractService{ServiceParams: params}
}

func (s *contractService) CreateContract(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToContract(ctx, s.Clock.Now())
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ContractRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("created contract", "contract_id", c.ID, "unit_name", c.UnitName)
	return dto.NewContractResponse(c), nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*dto.ContractResponse, error) {
	c, err := s.ContractRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContractResponse(c), nil
}

func (s *contractService) ListContracts(ctx context.Context) (*dto.ListContractsResponse, error) {
	contracts, err := s.ContractRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ContractResponse, len(contracts))
	for i, c := range contracts {
		items[i] = dto.NewContractResponse(c)
	}
	return &dto.ListContractsResponse{Items: items, Total: len(items)}, nil
}

// UpdateContractStatus moves a contract between lifecycle statuses. Terminal
// statuses stay terminal: an expired or terminated contract cannot be
// reactivated.
func (s *contractService) UpdateContractStatus(ctx context.Context, id string, req *dto.UpdateContractStatusRequest) (*dto.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *dto.ContractResponse
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		c, err := s.ContractRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		if c.TenantID != types.GetTenantID(ctx) {
			return ierr.NewError("contract tenant mismatch").
				WithHint("Contract does not belong to tenant").
				Mark(ierr.ErrInvalidOperation)
		}

		if !c.Status.CanTransitionTo(req.Status) {
			return ierr.NewError("invalid contract status transition").
				WithHintf("Contract cannot transition from %s to %s", c.Status, req.Status).
				Mark(ierr.ErrInvalidOperation)
		}

		c.Status = req.Status
		c.UpdatedAt = s.Clock.Now()
		if err := s.ContractRepo.Update(ctx, c); err != nil {
			return err
		}

		updated = dto.NewContractResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated contract status", "contract_id", id, "status", req.Status)
	return updated, nil
}
