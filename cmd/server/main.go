package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/runforua/donorboard/internal/api"
	v1 "github.com/runforua/donorboard/internal/api/v1"
	"github.com/runforua/donorboard/internal/cache"
	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/domain/tracking"
	"github.com/runforua/donorboard/internal/dynamodb"
	"github.com/runforua/donorboard/internal/httpclient"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/service"
	"github.com/runforua/donorboard/internal/wave"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC

	// Local development convenience; missing .env is fine
	_ = godotenv.Load()
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// HTTP client
			httpclient.NewDefaultClient,

			// Remote sources
			wave.NewClient,
			provideInvoiceRepository,
			dynamodb.NewClient,
			dynamodb.NewTrackingStore,

			// Services
			provideReportService,

			// API surface
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideInvoiceRepository(client *wave.Client) invoice.Repository {
	return client
}

func provideReportService(
	cfg *config.Configuration,
	log *logger.Logger,
	c cache.Cache,
	invoiceRepo invoice.Repository,
	trackingRepo tracking.Repository,
) service.ReportService {
	return service.NewReportService(service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Cache:        c,
		InvoiceRepo:  invoiceRepo,
		TrackingRepo: trackingRepo,
	})
}

func provideHandlers(reportService service.ReportService, log *logger.Logger) api.Handlers {
	return api.Handlers{
		Report: v1.NewReportHandler(reportService, log),
		Health: v1.NewHealthHandler(),
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
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
