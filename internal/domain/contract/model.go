package contract

import (
	"time"

	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// Contract represents a rental contract for a unit. Contracts own invoices;
// the invoice core reads the status to gate invoice creation but never
// transitions it.
type Contract struct {
	ID           string               `db:"id" json:"id"`
	TenantID     int64                `db:"tenant_id" json:"tenant_id"`
	UnitName     string               `db:"unit_name" json:"unit_name"`
	CustomerName string               `db:"customer_name" json:"customer_name"`
	RentAmount   decimal.Decimal      `db:"rent_amount" json:"rent_amount"`
	StartDate    time.Time            `db:"start_date" json:"start_date"`
	EndDate      time.Time            `db:"end_date" json:"end_date"`
	Status       types.ContractStatus `db:"status" json:"status"`

	types.BaseModel
}

func (c *Contract) Validate() error {
	if c.RentAmount.IsNegative() {
		return ierr.NewError("invalid rent amount").
			WithHint("Rent amount must not be negative").
			Mark(ierr.ErrValidation)
	}

	if err := c.Status.Validate(); err != nil {
		return err
	}

	if c.EndDate.Before(c.StartDate) {
		return ierr.NewError("invalid contract period").
			WithHint("End date must not be before start date").
			Mark(ierr.ErrValidation)
	}

	return nil
}
