package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leaseflow/leaseflow/internal/api"
	v1 "github.com/leaseflow/leaseflow/internal/api/v1"
	"github.com/leaseflow/leaseflow/internal/clock"
	"github.com/leaseflow/leaseflow/internal/config"
	"github.com/leaseflow/leaseflow/internal/logger"
	"github.com/leaseflow/leaseflow/internal/postgres"
	"github.com/leaseflow/leaseflow/internal/repository"
	"github.com/leaseflow/leaseflow/internal/service"
	"github.com/leaseflow/leaseflow/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Clock
			clock.New,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewContractRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,

			// Services
			service.NewServiceParams,
			service.NewContractService,
			service.NewInvoiceService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewContractHandler,
			v1.NewInvoiceHandler,
			provideHandlers,

			// Router
			api.NewRouter,
		),
		fx.Invoke(startAPIServer),
	)

	app.Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	contract *v1.ContractHandler,
	invoice *v1.InvoiceHandler,
) api.Handlers {
	return api.Handlers{
		Health:   health,
		Contract: contract,
		Invoice:  invoice,
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
