package invoice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	ierr "github.com/leaseflow/leaseflow/internal/errors"
)

// YearMonth formats the sequence-key month segment of an invoice number.
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// NumberGenerator derives human-readable invoice identifiers. Numbers are
// scoped to a (tenant, year-month) sequence key and take the form
// INV-001-2025-02-0001.
//
// The generator scans the greatest existing number under the key's prefix and
// increments its suffix. That read-then-derive step is race-prone on its own:
// uniqueness holds only when lookup and insert run inside one serializing
// transaction, which the lifecycle service provides.
type NumberGenerator struct {
	repo Repository
}

func NewNumberGenerator(repo Repository) *NumberGenerator {
	return &NumberGenerator{repo: repo}
}

// Next returns the next invoice number for the tenant and month. The first
// number under a fresh key carries suffix 0001. The 4-digit suffix pads wider
// past 9999 rather than failing; lexicographic max-scans stay correct for the
// fixed-width range that precedes the overflow.
func (g *NumberGenerator) Next(ctx context.Context, tenantID int64, yearMonth string) (string, error) {
	prefix := fmt.Sprintf("INV-%03d-%s-", tenantID, yearMonth)

	last, err := g.repo.MaxInvoiceNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	seq := int64(1)
	if last != "" {
		parsed, err := strconv.ParseInt(last[len(prefix):], 10, 64)
		if err != nil {
			return "", ierr.WithError(err).
				WithHint("Existing invoice number has a malformed sequence suffix").
				WithReportableDetails(map[string]any{
					"invoice_number": last,
				}).
				Mark(ierr.ErrSystem)
		}
		seq = parsed + 1
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
