package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/domain/report"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/wave"
)

// InvoiceRows flattens fetched invoices into one typed report row each.
// Coercion failures are fatal: a malformed amount or timestamp means the
// upstream schema changed, and a partially-typed table must not be shown.
func InvoiceRows(invoices []invoice.Invoice) ([]report.InvoiceRow, error) {
	rows := make([]report.InvoiceRow, 0, len(invoices))
	for i := range invoices {
		row, err := projectInvoice(&invoices[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ItemRows flattens invoices into one row per (invoice, line item) pair.
// Invoice-level columns are replicated onto every item row; an invoice
// without items contributes no rows.
func ItemRows(invoices []invoice.Invoice) ([]report.ItemRow, error) {
	var rows []report.ItemRow
	for i := range invoices {
		inv := &invoices[i]
		base, err := projectInvoice(inv)
		if err != nil {
			return nil, err
		}

		for _, item := range inv.Items {
			quantity, err := parseQuantity(item.Quantity.String())
			if err != nil {
				return nil, err
			}
			unitPrice, err := parseAmount(item.UnitPrice, "unitPrice")
			if err != nil {
				return nil, err
			}

			rows = append(rows, report.ItemRow{
				InvoiceRow:  base,
				Quantity:    quantity,
				Description: item.Description,
				UnitPrice:   unitPrice,
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
			})
		}
	}
	return rows, nil
}

func projectInvoice(inv *invoice.Invoice) (report.InvoiceRow, error) {
	var row report.InvoiceRow

	_, invoiceID := wave.DecodeInvoiceID(inv.ID)
	comment, company := parseMemo(inv.Memo)

	var shipping report.Address
	var phone *string
	if inv.Customer.ShippingDetails != nil {
		phone = inv.Customer.ShippingDetails.Phone
		shipping = sanitizeAddress(inv.Customer.ShippingDetails.Address)
	}
	billing := sanitizeAddress(inv.Customer.Address)

	amountDue, err := parseAmount(inv.AmountDue.Value, "amountDue")
	if err != nil {
		return row, err
	}
	amountPaid, err := parseAmount(inv.AmountPaid.Value, "amountPaid")
	if err != nil {
		return row, err
	}
	total, err := parseAmount(inv.Total.Value, "total")
	if err != nil {
		return row, err
	}

	registeredAt, err := parseTimestamp(inv.CreatedAt, "createdAt")
	if err != nil {
		return row, err
	}

	var lastSentAt *time.Time
	if inv.LastSentAt != nil && *inv.LastSentAt != "" {
		t, err := parseTimestamp(*inv.LastSentAt, "lastSentAt")
		if err != nil {
			return row, err
		}
		lastSentAt = &t
	}

	row = report.InvoiceRow{
		ID:            invoiceID,
		Memo:          inv.Memo,
		Comment:       comment,
		Company:       company,
		Status:        inv.Status,
		InvoiceNumber: inv.InvoiceNumber,

		LastSentAt:  lastSentAt,
		LastSentVia: inv.LastSentVia,

		RegisteredAt:     registeredAt,
		RegisteredAtDate: truncateToDate(registeredAt),

		AmountDue:  amountDue,
		AmountPaid: amountPaid,
		Total:      total,

		CustomerName:  inv.Customer.Name,
		CustomerEmail: inv.Customer.Email,
		CustomerPhone: phone,

		ShippingAddressLine1:      shipping.Line1,
		ShippingAddressLine2:      shipping.Line2,
		ShippingAddressCity:       shipping.City,
		ShippingAddressProvince:   shipping.Province,
		ShippingAddressCountry:    shipping.Country,
		ShippingAddressPostalCode: shipping.PostalCode,

		AddressLine1:      billing.Line1,
		AddressLine2:      billing.Line2,
		AddressCity:       billing.City,
		AddressProvince:   billing.Province,
		AddressCountry:    billing.Country,
		AddressPostalCode: billing.PostalCode,
	}
	return row, nil
}

// parseAmount coerces a monetary display string into a decimal. The source
// formats amounts with thousands-separator commas, which are stripped
// before parsing.
func parseAmount(value, column string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(value, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("The %s column has a malformed amount", column).
			WithReportableDetails(map[string]any{
				"column": column,
				"value":  value,
			}).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

func parseQuantity(value string) (int64, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("The quantity column has a malformed integer").
			WithReportableDetails(map[string]any{
				"value": value,
			}).
			Mark(ierr.ErrValidation)
	}
	return quantity, nil
}

func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("The %s column has a malformed timestamp", column).
			WithReportableDetails(map[string]any{
				"column": column,
				"value":  value,
			}).
			Mark(ierr.ErrValidation)
	}
	return t, nil
}

// truncateToDate drops the time-of-day, producing the derived date column.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
