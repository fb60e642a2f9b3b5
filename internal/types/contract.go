package types

import (
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/samber/lo"
)

// ContractStatus represents the lifecycle state of a rental contract.
// Transitions are driven outside the invoice core; invoicing only reads the
// status to gate invoice creation.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "DRAFT"
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusExpired    ContractStatus = "EXPIRED"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) Validate() error {
	allowed := []ContractStatus{
		ContractStatusDraft,
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusTerminated,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid contract status").
			WithHint("Please provide a valid contract status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo reports whether the status may move to target. Expired and
// terminated are terminal.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	allowed := map[ContractStatus][]ContractStatus{
		ContractStatusDraft: {
			ContractStatusActive,
			ContractStatusTerminated,
		},
		ContractStatusActive: {
			ContractStatusExpired,
			ContractStatusTerminated,
		},
	}
	return lo.Contains(allowed[s], target)
}
