package service

import (
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/runforua/donorboard/internal/domain/report"
	"github.com/runforua/donorboard/internal/domain/tracking"
)

// TrackingRows derives the UTM columns for each tracking record from its
// referrer URL. A repeated query parameter joins its values with a comma;
// an absent parameter (or an unparsable referrer) yields an empty string.
func TrackingRows(records []tracking.Record) []report.TrackingRow {
	rows := make([]report.TrackingRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.TrackingRow{
			DonationID:  rec.DonationID,
			Referrer:    rec.Referrer,
			UTMCampaign: utmParam(rec.Referrer, "utm_campaign"),
			UTMMedium:   utmParam(rec.Referrer, "utm_medium"),
		})
	}
	return rows
}

func utmParam(referrer, name string) string {
	u, err := url.Parse(referrer)
	if err != nil {
		return ""
	}
	return strings.Join(u.Query()[name], ",")
}

// EnrichInvoiceRows left-joins invoice rows to tracking records on
// invoice id = donation id. Every invoice row is preserved; rows without
// a tracking match keep nil UTM columns.
func EnrichInvoiceRows(rows []report.InvoiceRow, records []tracking.Record) []report.InvoiceRow {
	byDonation := lo.KeyBy(TrackingRows(records), func(r report.TrackingRow) string {
		return r.DonationID
	})

	out := make([]report.InvoiceRow, len(rows))
	for i, row := range rows {
		if match, ok := byDonation[row.ID]; ok {
			row.UTMCampaign = lo.ToPtr(match.UTMCampaign)
			row.UTMMedium = lo.ToPtr(match.UTMMedium)
		}
		out[i] = row
	}
	return out
}
