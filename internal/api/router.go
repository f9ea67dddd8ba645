package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/runforua/donorboard/internal/api/v1"
	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/rest/middleware"
)

type Handlers struct {
	Report *v1.ReportHandler
	Health *v1.HealthHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	// v1 routes, all behind the shared viewer password
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.ViewerAuth(cfg))
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	reports := router.Group("/campaigns/:slug")
	{
		reports.GET("/invoices", handlers.Report.ListInvoiceRows)
		reports.GET("/items", handlers.Report.ListItemRows)
		reports.GET("/summary", handlers.Report.GetSummary)
		reports.GET("/export/invoices.csv", handlers.Report.ExportInvoicesCSV)
		reports.GET("/export/items.csv", handlers.Report.ExportItemsCSV)
	}
}
