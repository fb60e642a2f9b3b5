package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/leaseflow/leaseflow/internal/api/v1"
	"github.com/leaseflow/leaseflow/internal/rest/middleware"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Contract *v1.ContractHandler
	Invoice  *v1.InvoiceHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.TenantMiddleware)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	contracts := router.Group("/contracts")
	{
		contracts.POST("", handlers.Contract.CreateContract)
		contracts.GET("", handlers.Contract.ListContracts)
		contracts.GET("/:id", handlers.Contract.GetContract)
		contracts.PUT("/:id/status", handlers.Contract.UpdateContractStatus)
		contracts.GET("/:id/summary", handlers.Contract.GetContractSummary)

		contracts.POST("/:id/invoices", handlers.Invoice.CreateInvoice)
		contracts.GET("/:id/invoices", handlers.Invoice.ListInvoices)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/payments", handlers.Invoice.RecordPayment)
	}
}
