package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusValidate(t *testing.T) {
	for _, status := range []InvoiceStatus{
		InvoiceStatusPending,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid,
		InvoiceStatusOverdue,
		InvoiceStatusCancelled,
	} {
		assert.NoError(t, status.Validate())
	}
	assert.Error(t, InvoiceStatus("VOID").Validate())
}

func TestInvoiceStatusTransitions(t *testing.T) {
	tests := []struct {
		from    InvoiceStatus
		to      InvoiceStatus
		allowed bool
	}{
		{InvoiceStatusPending, InvoiceStatusPartiallyPaid, true},
		{InvoiceStatusPending, InvoiceStatusPaid, true},
		{InvoiceStatusPending, InvoiceStatusCancelled, true},
		{InvoiceStatusPartiallyPaid, InvoiceStatusPartiallyPaid, true},
		{InvoiceStatusPartiallyPaid, InvoiceStatusPaid, true},
		{InvoiceStatusOverdue, InvoiceStatusPartiallyPaid, true},
		{InvoiceStatusOverdue, InvoiceStatusPaid, true},
		{InvoiceStatusOverdue, InvoiceStatusPending, false},
		{InvoiceStatusPaid, InvoiceStatusPartiallyPaid, false},
		{InvoiceStatusPaid, InvoiceStatusPending, false},
		{InvoiceStatusCancelled, InvoiceStatusPaid, false},
		{InvoiceStatusCancelled, InvoiceStatusPartiallyPaid, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestContractStatusTransitions(t *testing.T) {
	assert.True(t, ContractStatusDraft.CanTransitionTo(ContractStatusActive))
	assert.True(t, ContractStatusActive.CanTransitionTo(ContractStatusExpired))
	assert.True(t, ContractStatusActive.CanTransitionTo(ContractStatusTerminated))
	assert.False(t, ContractStatusExpired.CanTransitionTo(ContractStatusActive))
	assert.False(t, ContractStatusTerminated.CanTransitionTo(ContractStatusActive))
	assert.False(t, ContractStatusDraft.CanTransitionTo(ContractStatusExpired))
}

func TestInvoiceFilterValidate(t *testing.T) {
	limit := 500
	filter := &InvoiceFilter{Limit: &limit}
	assert.Error(t, filter.Validate())

	limit = 100
	assert.NoError(t, filter.Validate())

	offset := -1
	filter = &InvoiceFilter{Offset: &offset}
	assert.Error(t, filter.Validate())
}

func TestInvoiceFilterDefaults(t *testing.T) {
	var filter *InvoiceFilter
	assert.Equal(t, InvoiceDefaultListLimit, filter.GetLimit())
	assert.Equal(t, 0, filter.GetOffset())
}
