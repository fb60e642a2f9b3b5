package service

import (
	"github.com/leaseflow/leaseflow/internal/clock"
	"github.com/leaseflow/leaseflow/internal/config"
	"github.com/leaseflow/leaseflow/internal/domain/contract"
	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
)

// ServiceParams holds common dependencies used across services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Clock  clock.Clock

	ContractRepo contract.Repository
	InvoiceRepo  invoice.Repository
	PaymentRepo  payment.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	clk clock.Clock,
	contractRepo contract.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		Clock:        clk,
		ContractRepo: contractRepo,
		InvoiceRepo:  invoiceRepo,
		PaymentRepo:  paymentRepo,
	}
}
