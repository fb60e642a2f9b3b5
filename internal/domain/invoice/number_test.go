package invoice_test

import (
	"testing"
	"time"

	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/testutil"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeInvoice(t *testing.T, store *testutil.InMemoryInvoiceStore, number string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, store.Create(testutil.SetupContext(), &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ContractID:    "contract_test",
		TenantID:      types.DefaultTenantID,
		InvoiceNumber: number,
		Subtotal:      decimal.RequireFromString("100.00"),
		TaxAmount:     decimal.RequireFromString("17.50"),
		Total:         decimal.RequireFromString("117.50"),
		Status:        types.InvoiceStatusPending,
		DueDate:       now,
		BaseModel:     types.BaseModel{CreatedAt: now, UpdatedAt: now},
	}))
}

func TestNumberGeneratorFreshSequenceStartsAtOne(t *testing.T) {
	gen := invoice.NewNumberGenerator(testutil.NewInMemoryInvoiceStore())

	number, err := gen.Next(testutil.SetupContext(), 1, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, "INV-001-2025-02-0001", number)
}

func TestNumberGeneratorIncrementsContiguously(t *testing.T) {
	store := testutil.NewInMemoryInvoiceStore()
	gen := invoice.NewNumberGenerator(store)
	ctx := testutil.SetupContext()

	first, err := gen.Next(ctx, 1, "2025-02")
	require.NoError(t, err)
	storeInvoice(t, store, first)

	second, err := gen.Next(ctx, 1, "2025-02")
	require.NoError(t, err)
	storeInvoice(t, store, second)

	third, err := gen.Next(ctx, 1, "2025-02")
	require.NoError(t, err)

	assert.Equal(t, "INV-001-2025-02-0001", first)
	assert.Equal(t, "INV-001-2025-02-0002", second)
	assert.Equal(t, "INV-001-2025-02-0003", third)
}

func TestNumberGeneratorSequencesAreScopedPerTenantAndMonth(t *testing.T) {
	store := testutil.NewInMemoryInvoiceStore()
	gen := invoice.NewNumberGenerator(store)
	ctx := testutil.SetupContext()

	number, err := gen.Next(ctx, 1, "2025-02")
	require.NoError(t, err)
	storeInvoice(t, store, number)

	otherMonth, err := gen.Next(ctx, 1, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "INV-001-2025-03-0001", otherMonth)

	otherTenant, err := gen.Next(ctx, 2, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, "INV-002-2025-02-0001", otherTenant)
}

func TestNumberGeneratorWidensPastFourDigits(t *testing.T) {
	store := testutil.NewInMemoryInvoiceStore()
	gen := invoice.NewNumberGenerator(store)
	ctx := testutil.SetupContext()

	storeInvoice(t, store, "INV-001-2025-02-9999")

	number, err := gen.Next(ctx, 1, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, "INV-001-2025-02-10000", number)
}

func TestYearMonth(t *testing.T) {
	assert.Equal(t, "2025-02", invoice.YearMonth(time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", invoice.YearMonth(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}
