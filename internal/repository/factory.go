package repository

import (
	"github.com/leaseflow/leaseflow/internal/domain/contract"
	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	pgrepo "github.com/leaseflow/leaseflow/internal/repository/postgres"
)

func NewContractRepository(db postgres.IClient, logger *logger.Logger) contract.Repository {
	return pgrepo.NewContractRepository(db, logger)
}

func NewInvoiceRepository(db postgres.IClient, logger *logger.Logger) invoice.Repository {
	return pgrepo.NewInvoiceRepository(db, logger)
}

func NewPaymentRepository(db postgres.IClient, logger *logger.Logger) payment.Repository {
	return pgrepo.NewPaymentRepository(db, logger)
}
