package types

import "github.com/shopspring/decimal"

// PaidEpsilon is the tolerance used when comparing a running paid total
// against an invoice total. Fixed-point amounts carry two fractional digits,
// so anything closer than one cent counts as settled.
var PaidEpsilon = decimal.NewFromFloat(0.01)

// RoundCurrency rounds a monetary amount to two decimal places.
//
// shopspring/decimal rounds half away from zero, i.e. round-half-up for the
// non-negative amounts this system deals in. Every monetary figure that
// leaves a computation goes through this helper so the rounding mode is
// applied consistently.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
