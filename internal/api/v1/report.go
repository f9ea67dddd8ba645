package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/runforua/donorboard/internal/api/dto"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/service"
)

type ReportHandler struct {
	service service.ReportService
	log     *logger.Logger
}

func NewReportHandler(service service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// ListInvoiceRows returns the flat invoice table for a campaign, with
// optional status / sent-channel / free-text filters.
func (h *ReportHandler) ListInvoiceRows(c *gin.Context) {
	var req dto.ListInvoiceRowsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	rows, err := h.service.GetInvoiceRows(c.Request.Context(), c.Param("slug"), req.ToFilter())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoiceRowsResponse{Items: rows, Total: len(rows)})
}

// ListItemRows returns one row per (invoice, line item) pair.
func (h *ReportHandler) ListItemRows(c *gin.Context) {
	rows, err := h.service.GetItemRows(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ListItemRowsResponse{Items: rows, Total: len(rows)})
}

// GetSummary returns the headline metrics and breakdowns for a campaign.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportInvoicesCSV streams the invoice table as a CSV download.
func (h *ReportHandler) ExportInvoicesCSV(c *gin.Context) {
	slug := c.Param("slug")
	rows, err := h.service.GetInvoiceRows(c.Request.Context(), slug, dto.ListInvoiceRowsRequest{}.ToFilter())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+slug+`-invoices.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := service.WriteInvoicesCSV(c.Writer, rows); err != nil {
		h.log.Errorw("failed to stream invoice csv", "slug", slug, "error", err)
	}
}

// ExportItemsCSV streams the item table as a CSV download.
func (h *ReportHandler) ExportItemsCSV(c *gin.Context) {
	slug := c.Param("slug")
	rows, err := h.service.GetItemRows(c.Request.Context(), slug)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+slug+`-items.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := service.WriteItemsCSV(c.Writer, rows); err != nil {
		h.log.Errorw("failed to stream item csv", "slug", slug, "error", err)
	}
}
