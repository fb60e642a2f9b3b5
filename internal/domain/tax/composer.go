package tax

import (
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// Composer applies an ordered list of tax rules to an amount and sums their
// results. New rules are added by registering another Calculator, not by
// changing the composer.
type Composer struct {
	calculators []Calculator
}

// NewComposer builds a Composer over the given calculators, applied in order.
func NewComposer(calculators ...Calculator) *Composer {
	return &Composer{calculators: calculators}
}

// NewDefaultComposer returns the fixed rule set: VAT then municipal fee.
func NewDefaultComposer() *Composer {
	return NewComposer(
		NewVATCalculator(),
		NewMunicipalFeeCalculator(),
	)
}

// Calculate sums the per-calculator tax amounts (each already rounded to two
// decimals) and rounds the sum again to two decimals.
func (c *Composer) Calculate(amount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, calc := range c.calculators {
		total = total.Add(calc.Calculate(amount))
	}
	return types.RoundCurrency(total)
}
