package service

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/runforua/donorboard/internal/domain/report"
)

// Summarize computes the headline metrics over a projected invoice table.
func Summarize(rows []report.InvoiceRow) report.Summary {
	summary := report.Summary{TotalCollected: decimal.Zero}
	for _, row := range rows {
		switch {
		case row.Status.IsPaid():
			summary.TotalCollected = summary.TotalCollected.Add(row.AmountPaid)
			summary.TotalDonated++
		case row.Status.IsAbandoned():
			summary.TotalAbandoned++
		}
	}
	return summary
}

// CountByCountry buckets paid rows by billing country. Rows without a
// country land in the empty-key bucket.
func CountByCountry(rows []report.InvoiceRow) []report.BreakdownRow {
	paid := paidRows(rows)
	groups := lo.GroupBy(paid, func(r report.InvoiceRow) string {
		return lo.FromPtr(r.AddressCountry)
	})
	return countBuckets(groups)
}

// CountByItem buckets paid item rows by product name.
func CountByItem(rows []report.ItemRow) []report.BreakdownRow {
	paid := lo.Filter(rows, func(r report.ItemRow, _ int) bool {
		return r.Status.IsPaid()
	})
	groups := lo.GroupBy(paid, func(r report.ItemRow) string {
		return r.ProductName
	})

	out := make([]report.BreakdownRow, 0, len(groups))
	for key, members := range groups {
		amount := decimal.Zero
		for _, m := range members {
			amount = amount.Add(m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity)))
		}
		out = append(out, report.BreakdownRow{Key: key, Count: len(members), Amount: amount})
	}
	sortBuckets(out)
	return out
}

// AmountByUTMCampaign sums amount paid per utm_campaign over paid rows.
// Rows that never matched a tracking record carry no UTM columns and are
// excluded, matching how the dashboards have always grouped these.
func AmountByUTMCampaign(rows []report.InvoiceRow) []report.BreakdownRow {
	return amountByUTM(rows, func(r report.InvoiceRow) *string { return r.UTMCampaign })
}

// AmountByUTMMedium sums amount paid per utm_medium over paid rows.
func AmountByUTMMedium(rows []report.InvoiceRow) []report.BreakdownRow {
	return amountByUTM(rows, func(r report.InvoiceRow) *string { return r.UTMMedium })
}

func amountByUTM(rows []report.InvoiceRow, key func(report.InvoiceRow) *string) []report.BreakdownRow {
	matched := lo.Filter(paidRows(rows), func(r report.InvoiceRow, _ int) bool {
		return key(r) != nil
	})
	groups := lo.GroupBy(matched, func(r report.InvoiceRow) string {
		return *key(r)
	})

	out := make([]report.BreakdownRow, 0, len(groups))
	for k, members := range groups {
		amount := decimal.Zero
		for _, m := range members {
			amount = amount.Add(m.AmountPaid)
		}
		out = append(out, report.BreakdownRow{Key: k, Count: len(members), Amount: amount})
	}
	sortBuckets(out)
	return out
}

func paidRows(rows []report.InvoiceRow) []report.InvoiceRow {
	return lo.Filter(rows, func(r report.InvoiceRow, _ int) bool {
		return r.Status.IsPaid()
	})
}

func countBuckets(groups map[string][]report.InvoiceRow) []report.BreakdownRow {
	out := make([]report.BreakdownRow, 0, len(groups))
	for key, members := range groups {
		amount := decimal.Zero
		for _, m := range members {
			amount = amount.Add(m.AmountPaid)
		}
		out = append(out, report.BreakdownRow{Key: key, Count: len(members), Amount: amount})
	}
	sortBuckets(out)
	return out
}

// sortBuckets orders breakdown rows by key so repeated renders of the
// same data are byte-identical.
func sortBuckets(rows []report.BreakdownRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
}
