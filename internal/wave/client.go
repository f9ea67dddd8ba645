package wave

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/domain/invoice"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/httpclient"
	"github.com/runforua/donorboard/internal/logger"
)

// Client talks to the Wave accounting GraphQL API.
//
// API Playground - https://developer.waveapps.com/hc/en-us/articles/360018937431-API-Playground
type Client struct {
	http       httpclient.Client
	apiURL     string
	token      string
	businessID string
	log        *logger.Logger
}

var _ invoice.Repository = (*Client)(nil)

// NewClient builds a Wave client from configuration. The client is safe
// to construct once per process and reuse across requests.
func NewClient(cfg *config.Configuration, http httpclient.Client, log *logger.Logger) *Client {
	return &Client{
		http:       http,
		apiURL:     cfg.Wave.APIURL,
		token:      cfg.Wave.Token,
		businessID: cfg.Wave.BusinessID,
		log:        log,
	}
}

// ListBySlug fetches every invoice filed under the campaign slug, walking
// the paginated query one page at a time until the reported total page
// count is reached. Any transport or GraphQL error aborts the whole fetch;
// there is no partial result.
func (c *Client) ListBySlug(ctx context.Context, slug string) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice

	page := 1
	for {
		result, err := c.fetchPage(ctx, page, strings.ToUpper(slug))
		if err != nil {
			return nil, err
		}

		for _, edge := range result.Edges {
			invoices = append(invoices, edge.Node)
		}

		if page >= result.PageInfo.TotalPages {
			break
		}
		page++
	}

	c.log.Debugw("fetched invoices", "slug", slug, "count", len(invoices))
	return invoices, nil
}

func (c *Client) fetchPage(ctx context.Context, page int, slug string) (*invoicesPage, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query: invoicesQuery,
		Variables: map[string]any{
			"businessId": c.businessID,
			"page":       page,
			"slug":       slug,
		},
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not encode the invoice query").
			Mark(ierr.ErrSystem)
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.apiURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.token,
		},
		Body: payload,
	})
	if err != nil {
		return nil, err
	}

	var decoded invoicesResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, ierr.WithError(err).
			WithHint("The accounting API returned an unexpected response").
			Mark(ierr.ErrIntegration)
	}

	if len(decoded.Errors) > 0 {
		return nil, ierr.NewError(decoded.Errors[0].Message).
			WithHint("The accounting API rejected the invoice query").
			WithReportableDetails(map[string]any{
				"page": page,
				"slug": slug,
			}).
			Mark(ierr.ErrIntegration)
	}

	if decoded.Data == nil || decoded.Data.Business == nil || decoded.Data.Business.Invoices == nil {
		return nil, ierr.NewError("missing business in response").
			WithHint("The accounting API returned no data for the configured business").
			Mark(ierr.ErrIntegration)
	}

	return decoded.Data.Business.Invoices, nil
}
