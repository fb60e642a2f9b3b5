package service

import (
	"context"
	"time"

	"github.com/leaseflow/leaseflow/internal/api/dto"
	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/domain/tax"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceService drives the invoice lifecycle: raising invoices against
// contracts, recording payments, and reporting per-contract financials.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, contractID string, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	RecordPayment(ctx context.Context, invoiceID string, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, contractID string, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)
	GetContractSummary(ctx context.Context, contractID string) (*dto.ContractSummaryResponse, error)
}

type invoiceService struct {
	ServiceParams
	taxComposer *tax.Composer
	numberGen   *invoice.NumberGenerator
	ledger      *payment.Ledger
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		taxComposer:   tax.NewDefaultComposer(),
		numberGen:     invoice.NewNumberGenerator(params.InvoiceRepo),
		ledger:        payment.NewLedger(params.PaymentRepo),
	}
}

// CreateInvoice raises a new invoice against an active contract. The sequence
// lookup and insert run in one serializable transaction so concurrent creates
// under the same (tenant, month) key cannot mint the same invoice number; a
// losing transaction surfaces as Conflict and the caller may retry verbatim.
func (s *invoiceService) CreateInvoice(ctx context.Context, contractID string, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var inv *invoice.Invoice
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		c, err := s.ContractRepo.Get(ctx, contractID)
		if err != nil {
			return err
		}

		if c.Status != types.ContractStatusActive {
			return ierr.NewError("contract is not active").
				WithHint("Contract must be active to create an invoice").
				WithReportableDetails(map[string]any{
					"contract_id": c.ID,
					"status":      c.Status,
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		if c.TenantID != types.GetTenantID(ctx) {
			return ierr.NewError("contract tenant mismatch").
				WithHint("Contract does not belong to tenant").
				Mark(ierr.ErrInvalidOperation)
		}

		subtotal := types.RoundCurrency(c.RentAmount)
		taxAmount := s.taxComposer.Calculate(subtotal)
		total := types.RoundCurrency(subtotal.Add(taxAmount))

		number, err := s.numberGen.Next(ctx, c.TenantID, invoice.YearMonth(req.DueDate))
		if err != nil {
			return err
		}

		now := s.Clock.Now()
		inv = &invoice.Invoice{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
			ContractID:    c.ID,
			TenantID:      c.TenantID,
			InvoiceNumber: number,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			Total:         total,
			Status:        types.InvoiceStatusPending,
			DueDate:       req.DueDate,
			BaseModel: types.BaseModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}

		if err := inv.Validate(); err != nil {
			return err
		}
		return s.InvoiceRepo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"contract_id", contractID,
		"total", inv.Total)

	return dto.NewInvoiceResponse(inv, decimal.Zero), nil
}

// RecordPayment appends a payment to an invoice and advances the invoice
// status. The ledger read, payment insert, and status update are one atomic
// unit, so two concurrent payments cannot both pass the remaining-balance
// check and jointly overpay. The created payment is the success value, with
// the post-payment invoice state attached.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var inv *invoice.Invoice
	var p *payment.Payment
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		var err error
		inv, err = s.InvoiceRepo.Get(ctx, invoiceID)
		if err != nil {
			return err
		}

		if inv.Status == types.InvoiceStatusCancelled {
			return ierr.NewError("invoice is cancelled").
				WithHint("Cannot record payment on a cancelled invoice").
				Mark(ierr.ErrInvalidOperation)
		}

		totalPaid, err := s.ledger.TotalPaid(ctx, inv.ID)
		if err != nil {
			return err
		}

		// Validation runs against the unclamped difference. Zero and
		// negative amounts fail the same bound.
		remaining := inv.Total.Sub(totalPaid)
		if !req.Amount.IsPositive() || req.Amount.GreaterThan(remaining) {
			return ierr.NewError("payment amount out of bounds").
				WithHint("Payment amount cannot exceed remaining balance").
				WithReportableDetails(map[string]any{
					"amount":    req.Amount.String(),
					"remaining": remaining.String(),
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		now := s.Clock.Now()
		p = &payment.Payment{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
			InvoiceID:       inv.ID,
			Amount:          types.RoundCurrency(req.Amount),
			PaymentMethod:   req.PaymentMethod,
			ReferenceNumber: req.ReferenceNumber,
			PaidAt:          now,
			BaseModel: types.BaseModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := s.PaymentRepo.Create(ctx, p); err != nil {
			return err
		}

		// Epsilon absorbs fixed-point rounding drift when deciding whether
		// the invoice is settled.
		newTotalPaid := totalPaid.Add(p.Amount)
		target := types.InvoiceStatusPartiallyPaid
		if inv.Total.Sub(newTotalPaid).Abs().LessThan(types.PaidEpsilon) {
			target = types.InvoiceStatusPaid
		}

		if !inv.Status.CanTransitionTo(target) {
			return ierr.NewError("invalid invoice status transition").
				WithHintf("Invoice cannot transition from %s to %s", inv.Status, target).
				Mark(ierr.ErrInvalidOperation)
		}

		inv.Status = target
		if target == types.InvoiceStatusPaid {
			inv.PaidAt = &now
		}
		inv.UpdatedAt = now

		return s.InvoiceRepo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded payment",
		"payment_id", p.ID,
		"invoice_id", inv.ID,
		"amount", p.Amount,
		"status", inv.Status)

	invResp, err := s.buildInvoiceResponse(ctx, inv)
	if err != nil {
		return nil, err
	}

	resp := dto.NewPaymentResponse(p)
	resp.Invoice = invResp
	return resp, nil
}

// GetInvoice returns an invoice with its payment history and ledger totals.
func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildInvoiceResponse(ctx, inv)
}

// ListInvoices returns a contract's invoices matching the filter, newest
// first, with per-invoice ledger totals.
func (s *invoiceService) ListInvoices(ctx context.Context, contractID string, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ContractRepo.Get(ctx, contractID); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.ListByContract(ctx, contractID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.InvoiceRepo.CountByContract(ctx, contractID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		totalPaid, err := s.ledger.TotalPaid(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		items[i] = dto.NewInvoiceResponse(inv, totalPaid)
	}

	return &dto.ListInvoicesResponse{
		Items: items,
		Pagination: dto.PaginationResponse{
			Total:  total,
			Limit:  filter.GetLimit(),
			Offset: filter.GetOffset(),
		},
	}, nil
}

// GetContractSummary aggregates a contract's invoices into totals: amount
// invoiced, amount paid, outstanding balance, invoice count, and the latest
// due date. Pure read; calling it never mutates state.
func (s *invoiceService) GetContractSummary(ctx context.Context, contractID string) (*dto.ContractSummaryResponse, error) {
	if _, err := s.ContractRepo.Get(ctx, contractID); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.ListByContract(ctx, contractID, types.NewNoLimitInvoiceFilter())
	if err != nil {
		return nil, err
	}

	totalInvoiced := decimal.Zero
	totalPaid := decimal.Zero
	var latest *time.Time

	for _, inv := range invoices {
		totalInvoiced = totalInvoiced.Add(inv.Total)

		paid, err := s.ledger.TotalPaid(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		totalPaid = totalPaid.Add(paid)

		if latest == nil || inv.DueDate.After(*latest) {
			due := inv.DueDate
			latest = &due
		}
	}

	// Unclamped: the overpayment guard keeps this non-negative in practice,
	// and the summary reports the raw difference either way.
	outstanding := totalInvoiced.Sub(totalPaid)

	return &dto.ContractSummaryResponse{
		ContractID:         contractID,
		TotalInvoiced:      types.RoundCurrency(totalInvoiced),
		TotalPaid:          types.RoundCurrency(totalPaid),
		OutstandingBalance: types.RoundCurrency(outstanding),
		InvoicesCount:      len(invoices),
		LatestInvoiceDate:  latest,
	}, nil
}

func (s *invoiceService) buildInvoiceResponse(ctx context.Context, inv *invoice.Invoice) (*dto.InvoiceResponse, error) {
	payments, err := s.PaymentRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	resp := dto.NewInvoiceResponse(inv, totalPaid)
	resp.Payments = dto.NewPaymentResponseList(payments)
	return resp, nil
}
