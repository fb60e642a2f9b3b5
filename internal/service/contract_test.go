package service

import (
	"testing"
	"time"

	"github.com/leaseflow/leaseflow/internal/api/dto"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/testutil"
	"github.com/leaseflow/leaseflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ContractServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ContractService
}

func TestContractService(t *testing.T) {
	suite.Run(t, new(ContractServiceSuite))
}

func (s *ContractServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewContractService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		Clock:        s.GetClock(),
		ContractRepo: s.GetStores().ContractRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		PaymentRepo:  s.GetStores().PaymentRepo,
	})
}

func (s *ContractServiceSuite) createRequest() *dto.CreateContractRequest {
	return &dto.CreateContractRequest{
		UnitName:     "Unit 12A",
		CustomerName: "Horizon Retail LLC",
		RentAmount:   decimal.RequireFromString("2500.00"),
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ContractServiceSuite) TestCreateContract() {
	resp, err := s.service.CreateContract(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	s.NotEmpty(resp.ID)
	s.Equal(types.DefaultTenantID, resp.TenantID)
	s.Equal(types.ContractStatusDraft, resp.Status)
	s.True(resp.RentAmount.Equal(decimal.RequireFromString("2500.00")))
	s.Equal(s.GetClock().Now(), resp.CreatedAt)
}

func (s *ContractServiceSuite) TestCreateContractRejectsNegativeRent() {
	req := s.createRequest()
	req.RentAmount = decimal.RequireFromString("-1.00")

	_, err := s.service.CreateContract(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ContractServiceSuite) TestCreateContractRejectsInvertedPeriod() {
	req := s.createRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := s.service.CreateContract(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ContractServiceSuite) TestGetContract() {
	created, err := s.service.CreateContract(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	resp, err := s.service.GetContract(s.GetContext(), created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, resp.ID)
}

func (s *ContractServiceSuite) TestGetContractNotFound() {
	_, err := s.service.GetContract(s.GetContext(), "contract_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ContractServiceSuite) TestListContractsScopedToTenant() {
	_, err := s.service.CreateContract(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	otherTenantCtx := testutil.SetupContextForTenant(2)
	_, err = s.service.CreateContract(otherTenantCtx, s.createRequest())
	s.Require().NoError(err)

	resp, err := s.service.ListContracts(s.GetContext())
	s.Require().NoError(err)
	s.Equal(1, resp.Total)
	s.Len(resp.Items, 1)
}

func (s *ContractServiceSuite) TestUpdateContractStatusActivates() {
	created, err := s.service.CreateContract(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	resp, err := s.service.UpdateContractStatus(s.GetContext(), created.ID, &dto.UpdateContractStatusRequest{
		Status: types.ContractStatusActive,
	})
	s.Require().NoError(err)
	s.Equal(types.ContractStatusActive, resp.Status)
}

func (s *ContractServiceSuite) TestUpdateContractStatusRejectsReactivation() {
	created, err := s.service.CreateContract(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), created.ID, &dto.UpdateContractStatusRequest{
		Status: types.ContractStatusActive,
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), created.ID, &dto.UpdateContractStatusRequest{
		Status: types.ContractStatusTerminated,
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), created.ID, &dto.UpdateContractStatusRequest{
		Status: types.ContractStatusActive,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ContractServiceSuite) TestUpdateContractStatusRejectsForeignTenant() {
	otherTenantCtx := testutil.SetupContextForTenant(2)
	created, err := s.service.CreateContract(otherTenantCtx, s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.UpdateContractStatus(s.GetContext(), created.ID, &dto.UpdateContractStatusRequest{
		Status: types.ContractStatusActive,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
