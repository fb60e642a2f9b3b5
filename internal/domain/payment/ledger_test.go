package payment_test

import (
	"testing"
	"time"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/testutil"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePayment(t *testing.T, store *testutil.InMemoryPaymentStore, invoiceID, amount string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, store.Create(testutil.SetupContext(), &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:     invoiceID,
		Amount:        decimal.RequireFromString(amount),
		PaymentMethod: types.PaymentMethodCash,
		PaidAt:        now,
		BaseModel:     types.BaseModel{CreatedAt: now, UpdatedAt: now},
	}))
}

func testInvoice(total string) *invoice.Invoice {
	return &invoice.Invoice{
		ID:    "inv_ledger_test",
		Total: decimal.RequireFromString(total),
	}
}

func TestLedgerTotalPaid(t *testing.T) {
	store := testutil.NewInMemoryPaymentStore()
	ledger := payment.NewLedger(store)
	ctx := testutil.SetupContext()

	paid, err := ledger.TotalPaid(ctx, "inv_ledger_test")
	require.NoError(t, err)
	assert.True(t, paid.IsZero())

	storePayment(t, store, "inv_ledger_test", "40.00")
	storePayment(t, store, "inv_ledger_test", "25.50")
	storePayment(t, store, "other_invoice", "99.99")

	paid, err = ledger.TotalPaid(ctx, "inv_ledger_test")
	require.NoError(t, err)
	assert.True(t, paid.Equal(decimal.RequireFromString("65.50")), "got %s", paid)
}

func TestLedgerRemaining(t *testing.T) {
	store := testutil.NewInMemoryPaymentStore()
	ledger := payment.NewLedger(store)
	ctx := testutil.SetupContext()

	storePayment(t, store, "inv_ledger_test", "40.00")

	remaining, err := ledger.Remaining(ctx, testInvoice("100.00"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.RequireFromString("60.00")), "got %s", remaining)
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		paid     string
		expected string
	}{
		{"unpaid", "100.00", "0", "100.00"},
		{"partially paid", "100.00", "40.00", "60.00"},
		{"fully paid", "100.00", "100.00", "0"},
		{"overpaid floors at zero", "100.00", "120.00", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := payment.RemainingBalance(
				decimal.RequireFromString(tc.total),
				decimal.RequireFromString(tc.paid),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)), "got %s", got)
		})
	}
}

func TestLedgerRemainingFloorsAtZero(t *testing.T) {
	store := testutil.NewInMemoryPaymentStore()
	ledger := payment.NewLedger(store)
	ctx := testutil.SetupContext()

	storePayment(t, store, "inv_ledger_test", "120.00")

	remaining, err := ledger.Remaining(ctx, testInvoice("100.00"))
	require.NoError(t, err)
	assert.True(t, remaining.IsZero(), "got %s", remaining)
}
