package tax

import (
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// Calculator computes the tax due on a monetary amount. Implementations must
// be deterministic and side-effect free; amounts are assumed non-negative.
type Calculator interface {
	Calculate(amount decimal.Decimal) decimal.Decimal
}

// rateCalculator applies a fixed percentage rate, rounding to two decimals.
type rateCalculator struct {
	rate decimal.Decimal
}

// NewRateCalculator returns a Calculator applying the given fractional rate,
// e.g. 0.15 for 15%.
func NewRateCalculator(rate decimal.Decimal) Calculator {
	return rateCalculator{rate: rate}
}

func (c rateCalculator) Calculate(amount decimal.Decimal) decimal.Decimal {
	return types.RoundCurrency(amount.Mul(c.rate))
}

var (
	vatRate          = decimal.NewFromFloat(0.15)
	municipalFeeRate = decimal.NewFromFloat(0.025)
)

// NewVATCalculator returns the 15% value-added tax rule.
func NewVATCalculator() Calculator {
	return NewRateCalculator(vatRate)
}

// NewMunicipalFeeCalculator returns the 2.5% municipal fee rule.
func NewMunicipalFeeCalculator() Calculator {
	return NewRateCalculator(municipalFeeRate)
}
