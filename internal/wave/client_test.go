package wave

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforua/donorboard/internal/config"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/testutil"
)

func newTestClient(t *testing.T, http *testutil.MockHTTPClient) *Client {
	t.Helper()
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	return NewClient(cfg, http, log)
}

func pageJSON(page, totalPages int, invoiceIDs ...string) string {
	edges := ""
	for i, id := range invoiceIDs {
		if i > 0 {
			edges += ","
		}
		edges += fmt.Sprintf(`{"node": {
			"id": %q,
			"invoiceNumber": "2FUA-RUN4UA",
			"status": "PAID",
			"createdAt": "2022-04-10T18:17:53Z",
			"amountDue": {"value": "0.00"},
			"amountPaid": {"value": "50.00"},
			"total": {"value": "50.00"},
			"customer": {"id": "c1", "name": "Olena"}
		}}`, id)
	}
	return fmt.Sprintf(`{"data": {"business": {"id": "b1", "invoices": {
		"edges": [%s],
		"pageInfo": {"totalPages": %d, "currentPage": %d, "totalCount": %d}
	}}}}`, edges, totalPages, page, len(invoiceIDs))
}

func TestListBySlugPagination(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	client := newTestClient(t, mock)

	mock.EnqueueJSON(client.apiURL, pageJSON(1, 3, "id-1", "id-2"))
	mock.EnqueueJSON(client.apiURL, pageJSON(2, 3, "id-3"))
	mock.EnqueueJSON(client.apiURL, pageJSON(3, 3, "id-4"))

	invoices, err := client.ListBySlug(context.Background(), "2fua-run4ua")
	require.NoError(t, err)

	require.Len(t, invoices, 4)
	assert.Equal(t, "id-1", invoices[0].ID)
	assert.Equal(t, "id-4", invoices[3].ID)

	requests := mock.Requests()
	require.Len(t, requests, 3)

	for i, req := range requests {
		assert.Equal(t, "Bearer "+client.token, req.Headers["Authorization"])

		var payload struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.Unmarshal(req.Body, &payload))
		assert.Equal(t, "2FUA-RUN4UA", payload.Variables["slug"])
		assert.Equal(t, float64(i+1), payload.Variables["page"])
		assert.Equal(t, client.businessID, payload.Variables["businessId"])
	}
}

func TestListBySlugSinglePage(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	client := newTestClient(t, mock)

	mock.EnqueueJSON(client.apiURL, pageJSON(1, 1, "id-1"))

	invoices, err := client.ListBySlug(context.Background(), "SECONDFRONT")
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Len(t, mock.Requests(), 1)
}

func TestListBySlugEmptyResult(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	client := newTestClient(t, mock)

	// A slug with no invoices reports zero total pages; the single probe
	// request must not loop.
	mock.EnqueueJSON(client.apiURL, pageJSON(1, 0))

	invoices, err := client.ListBySlug(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.Len(t, mock.Requests(), 1)
}

func TestListBySlugGraphQLError(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	client := newTestClient(t, mock)

	mock.EnqueueJSON(client.apiURL, `{"errors": [{"message": "Not authorized"}]}`)

	_, err := client.ListBySlug(context.Background(), "2FUA-RUN4UA")
	require.Error(t, err)
	assert.True(t, ierr.IsIntegration(err))
}

func TestListBySlugTransportError(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	client := newTestClient(t, mock)

	mock.EnqueueResponse(client.apiURL, testutil.MockResponse{StatusCode: 500, Body: []byte("boom")})

	_, err := client.ListBySlug(context.Background(), "2FUA-RUN4UA")
	require.Error(t, err)
}
