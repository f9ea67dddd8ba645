package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/runforua/donorboard/internal/api/v1"
	"github.com/runforua/donorboard/internal/cache"
	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/rest/middleware"
	"github.com/runforua/donorboard/internal/service"
	"github.com/runforua/donorboard/internal/testutil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	invoiceRepo := testutil.NewInMemoryInvoiceStore()
	invoiceRepo.Add(
		testutil.NewInvoiceFixture("inv-1", "2FUA-RUN4UA"),
		testutil.NewInvoiceFixture("inv-2", "2FUA-RUN4UA"),
	)
	trackingRepo := testutil.NewInMemoryTrackingStore()
	trackingRepo.Add(
		testutil.NewTrackingFixture("inv-1", "https://donate.example.org/?utm_campaign=spring"),
	)

	svc := service.NewReportService(service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Cache:        cache.NewInMemoryCache(cfg),
		InvoiceRepo:  invoiceRepo,
		TrackingRepo: trackingRepo,
	})

	return NewRouter(Handlers{
		Report: v1.NewReportHandler(svc, log),
		Health: v1.NewHealthHandler(),
	}, cfg)
}

func doRequest(r *gin.Engine, path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		req.Header.Set(middleware.ViewerPasswordHeader, "test-password")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthIsOpen(t *testing.T) {
	w := doRequest(newTestRouter(t), "/health", false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportRoutesRequireViewerPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/v1/campaigns/2FUA-RUN4UA/invoices", false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, "/v1/campaigns/2FUA-RUN4UA/invoices", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListInvoices(t *testing.T) {
	w := doRequest(newTestRouter(t), "/v1/campaigns/2FUA-RUN4UA/invoices", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Items, 2)
}

func TestListInvoicesStatusFilter(t *testing.T) {
	w := doRequest(newTestRouter(t), "/v1/campaigns/2FUA-RUN4UA/invoices?status=VIEWED", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}

func TestUnknownCampaignIs404(t *testing.T) {
	w := doRequest(newTestRouter(t), "/v1/campaigns/NOPE/invoices", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No campaign is configured")
}

func TestSummaryEndpoint(t *testing.T) {
	w := doRequest(newTestRouter(t), "/v1/campaigns/2FUA-RUN4UA/summary", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Campaign string `json:"campaign"`
		Summary  struct {
			TotalDonated int `json:"total_donated"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Run For Ukraine", resp.Campaign)
	assert.Equal(t, 2, resp.Summary.TotalDonated)
}

func TestExportInvoicesCSV(t *testing.T) {
	w := doRequest(newTestRouter(t), "/v1/campaigns/2FUA-RUN4UA/export/invoices.csv", true)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3, "header plus one line per invoice")
	assert.True(t, strings.HasPrefix(lines[0], "id,invoice_number,status"))
}
