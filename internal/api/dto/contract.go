package dto

import (
	"context"
	"time"

	"github.com/leaseflow/leaseflow/internal/domain/contract"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/leaseflow/leaseflow/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateContractRequest represents the request payload for creating a contract
type CreateContractRequest struct {
	// unit_name names the rental unit covered by the contract
	UnitName string `json:"unit_name" validate:"required,max=255"`

	// customer_name is the renting customer's display name
	CustomerName string `json:"customer_name" validate:"required,max=255"`

	// rent_amount is the monthly rent, two decimal places
	RentAmount decimal.Decimal `json:"rent_amount"`

	// start_date is the first day of the rental period
	StartDate time.Time `json:"start_date" validate:"required" time_format:"2006-01-02"`

	// end_date is the last day of the rental period
	EndDate time.Time `json:"end_date" validate:"required" time_format:"2006-01-02"`
}

func (r *CreateContractRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.RentAmount.IsNegative() {
		return ierr.NewError("rent_amount must be non-negative").
			WithHint("Rent amount must not be negative").
			Mark(ierr.ErrValidation)
	}

	if r.EndDate.Before(r.StartDate) {
		return ierr.NewError("invalid contract period").
			WithHint("End date must not be before start date").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// ToContract converts the request to a domain contract. New contracts start
// in DRAFT; activation happens through the status endpoint.
func (r *CreateContractRequest) ToContract(ctx context.Context, now time.Time) *contract.Contract {
	return &contract.Contract{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONTRACT),
		TenantID:     types.GetTenantID(ctx),
		UnitName:     r.UnitName,
		CustomerName: r.CustomerName,
		RentAmount:   types.RoundCurrency(r.RentAmount),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Status:       types.ContractStatusDraft,
		BaseModel: types.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// UpdateContractStatusRequest transitions a contract's lifecycle status
type UpdateContractStatusRequest struct {
	Status types.ContractStatus `json:"status" validate:"required"`
}

func (r *UpdateContractStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	*contract.Contract
}

func NewContractResponse(c *contract.Contract) *ContractResponse {
	return &ContractResponse{Contract: c}
}

// ListContractsResponse represents a contract listing
type ListContractsResponse struct {
	Items []*ContractResponse `json:"items"`
	Total int                 `json:"total"`
}

// ContractSummaryResponse represents the financial summary for a contract
type ContractSummaryResponse struct {
	ContractID         string          `json:"contract_id"`
	TotalInvoiced      decimal.Decimal `json:"total_invoiced"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	InvoicesCount      int             `json:"invoices_count"`
	LatestInvoiceDate  *time.Time      `json:"latest_invoice_date"`
}
