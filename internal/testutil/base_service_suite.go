package testutil

import (
	"context"
	"time"

	"github.com/leaseflow/leaseflow/internal/config"
	"github.com/leaseflow/leaseflow/internal/domain/contract"
	"github.com/leaseflow/leaseflow/internal/domain/invoice"
	"github.com/leaseflow/leaseflow/internal/domain/payment"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	ContractRepo contract.Repository
	InvoiceRepo  invoice.Repository
	PaymentRepo  payment.Repository
}

// BaseServiceTestSuite provides common setup for service tests: in-memory
// stores, a serializing transaction stub, a pinned clock, and a tenant
// scoped context.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	clock  *TestClock
	config *config.Configuration
}

func (s *BaseServiceTestSuite) SetupSuite() {
	s.logger = logger.NewNopLogger()
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.clock = NewTestClock(time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC))
	s.db = NewMockPostgresClient(s.logger)
	s.config = &config.Configuration{}
	s.stores = Stores{
		ContractRepo: NewInMemoryContractStore(),
		InvoiceRepo:  NewInMemoryInvoiceStore(),
		PaymentRepo:  NewInMemoryPaymentStore(),
	}
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetClock() *TestClock {
	return s.clock
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
