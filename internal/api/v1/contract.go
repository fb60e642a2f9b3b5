package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leaseflow/leaseflow/internal/api/dto"
	ierr "github.com/leaseflow/leaseflow/internal/errors"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/service"
)

type ContractHandler struct {
	contractService service.ContractService
	invoiceService  service.InvoiceService
	logger          *logger.Logger
}

func NewContractHandler(
	contractService service.ContractService,
	invoiceService service.InvoiceService,
	logger *logger.Logger,
) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		invoiceService:  invoiceService,
		logger:          logger,
	}
}

// CreateContract godoc
// @Summary Create a new rental contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.contractService.CreateContract(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to create contract", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetContract godoc
// @Summary Get a contract by ID
// @Tags Contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid contract id").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListContracts godoc
// @Summary List contracts for the tenant
// @Tags Contracts
// @Produce json
// @Success 200 {object} dto.ListContractsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	resp, err := h.contractService.ListContracts(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list contracts", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateContractStatus godoc
// @Summary Update a contract's lifecycle status
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param status body dto.UpdateContractStatusRequest true "Target status"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /contracts/{id}/status [put]
func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid contract id").Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.contractService.UpdateContractStatus(c.Request.Context(), id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContractSummary godoc
// @Summary Get the financial summary for a contract
// @Tags Contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} dto.ContractSummaryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /contracts/{id}/summary [get]
func (h *ContractHandler) GetContractSummary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid contract id").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceService.GetContractSummary(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
