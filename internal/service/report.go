package service

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/runforua/donorboard/internal/cache"
	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/domain/report"
	"github.com/runforua/donorboard/internal/domain/tracking"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/types"
)

// ReportService produces the flat, enriched report tables for a campaign.
// Each call recomputes the tables from a fresh (or cached) fetch; nothing
// is persisted.
type ReportService interface {
	GetInvoiceRows(ctx context.Context, slug string, filter types.InvoiceRowFilter) ([]report.InvoiceRow, error)
	GetItemRows(ctx context.Context, slug string) ([]report.ItemRow, error)
	GetSummary(ctx context.Context, slug string) (*report.CampaignSummary, error)
}

// ServiceParams holds the collaborators a service needs. Fetch clients
// are injected, never constructed inside the service.
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	Cache        cache.Cache
	InvoiceRepo  invoice.Repository
	TrackingRepo tracking.Repository
}

type reportService struct {
	ServiceParams
}

func NewReportService(params ServiceParams) ReportService {
	return &reportService{ServiceParams: params}
}

func (s *reportService) GetInvoiceRows(ctx context.Context, slug string, filter types.InvoiceRowFilter) ([]report.InvoiceRow, error) {
	rows, err := s.enrichedRows(ctx, slug)
	if err != nil {
		return nil, err
	}
	return applyFilter(rows, filter), nil
}

func (s *reportService) GetItemRows(ctx context.Context, slug string) ([]report.ItemRow, error) {
	slug, err := s.resolveSlug(slug)
	if err != nil {
		return nil, err
	}

	invoices, err := s.fetchInvoices(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ItemRows(invoices)
}

func (s *reportService) GetSummary(ctx context.Context, slug string) (*report.CampaignSummary, error) {
	rows, err := s.enrichedRows(ctx, slug)
	if err != nil {
		return nil, err
	}
	items, err := s.GetItemRows(ctx, slug)
	if err != nil {
		return nil, err
	}

	name := slug
	if campaign, ok := s.Config.CampaignBySlug(slug); ok {
		name = campaign.Name
	}

	return &report.CampaignSummary{
		Campaign:      name,
		Summary:       Summarize(rows),
		ByCountry:     CountByCountry(rows),
		ByItem:        CountByItem(items),
		ByUTMCampaign: AmountByUTMCampaign(rows),
		ByUTMMedium:   AmountByUTMMedium(rows),
	}, nil
}

// enrichedRows runs the full pipeline: fetch both sources, project the
// invoice table, and left-join the tracking-derived UTM columns.
func (s *reportService) enrichedRows(ctx context.Context, slug string) ([]report.InvoiceRow, error) {
	slug, err := s.resolveSlug(slug)
	if err != nil {
		return nil, err
	}

	invoices, err := s.fetchInvoices(ctx, slug)
	if err != nil {
		return nil, err
	}

	rows, err := InvoiceRows(invoices)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchTracking(ctx)
	if err != nil {
		return nil, err
	}

	return EnrichInvoiceRows(rows, records), nil
}

// resolveSlug validates the slug against the configured campaigns. When
// no campaigns are configured every slug is accepted.
func (s *reportService) resolveSlug(slug string) (string, error) {
	if len(s.Config.Campaigns) == 0 {
		return slug, nil
	}
	campaign, ok := s.Config.CampaignBySlug(slug)
	if !ok {
		return "", ierr.NewError("unknown campaign").
			WithHintf("No campaign is configured for slug %q", slug).
			Mark(ierr.ErrNotFound)
	}
	return campaign.Slug, nil
}

// fetchInvoices is a read-through cache around the invoice fetcher, keyed
// by slug and bounded by the configured TTL. A cache hit and a fresh
// fetch are behaviorally identical downstream.
func (s *reportService) fetchInvoices(ctx context.Context, slug string) ([]invoice.Invoice, error) {
	key := cache.GenerateKey(cache.PrefixInvoices, strings.ToUpper(slug))
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if invoices, ok := cached.([]invoice.Invoice); ok {
			return invoices, nil
		}
	}

	invoices, err := s.InvoiceRepo.ListBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, invoices, s.Config.Cache.TTL)
	return invoices, nil
}

func (s *reportService) fetchTracking(ctx context.Context) ([]tracking.Record, error) {
	if s.TrackingRepo == nil {
		return nil, nil
	}

	key := cache.GenerateKey(cache.PrefixTracking, "all")
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if records, ok := cached.([]tracking.Record); ok {
			return records, nil
		}
	}

	records, err := s.TrackingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, records, s.Config.Cache.TTL)
	return records, nil
}

func applyFilter(rows []report.InvoiceRow, filter types.InvoiceRowFilter) []report.InvoiceRow {
	if filter.IsUnfiltered() {
		return rows
	}

	return lo.Filter(rows, func(row report.InvoiceRow, _ int) bool {
		if filter.Status != "" && row.Status != filter.Status {
			return false
		}
		if filter.SentVia != "" {
			if row.LastSentVia == nil || types.SentVia(*row.LastSentVia) != filter.SentVia {
				return false
			}
		}
		return filter.MatchesText(
			&row.CustomerName,
			row.CustomerEmail,
			row.CustomerPhone,
			&row.InvoiceNumber,
			row.AddressCity,
			row.AddressProvince,
			row.AddressPostalCode,
		)
	})
}
