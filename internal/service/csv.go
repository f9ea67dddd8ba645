package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/runforua/donorboard/internal/domain/report"
)

// InvoiceCSVHeader is the column order for exported invoice tables.
const InvoiceCSVHeader = "id,invoice_number,status,registered_at,registered_at_date,last_sent_at,last_sent_via," +
	"amount_due,amount_paid,total,customer_name,customer_email,customer_phone,company,comment,memo," +
	"shipping_address_line_1,shipping_address_line_2,shipping_address_city,shipping_address_province," +
	"shipping_address_country,shipping_address_postal_code," +
	"address_line_1,address_line_2,address_city,address_province,address_country,address_postal_code," +
	"utm_campaign,utm_medium"

// ItemCSVHeader appends the per-item columns to the invoice columns.
const ItemCSVHeader = InvoiceCSVHeader + ",quantity,description,unit_price,product_id,product_name"

const csvDateFormat = "2006-01-02"

// WriteInvoicesCSV writes invoice rows as CSV (including the header).
func WriteInvoicesCSV(w io.Writer, rows []report.InvoiceRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(InvoiceCSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(invoiceRecord(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteItemsCSV writes item rows as CSV (including the header).
func WriteItemsCSV(w io.Writer, rows []report.ItemRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ItemCSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := append(invoiceRecord(row.InvoiceRow),
			strconv.FormatInt(row.Quantity, 10),
			row.Description,
			row.UnitPrice.String(),
			row.ProductID,
			row.ProductName,
		)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func invoiceRecord(row report.InvoiceRow) []string {
	return []string{
		row.ID,
		row.InvoiceNumber,
		row.Status.String(),
		row.RegisteredAt.Format(time.RFC3339),
		row.RegisteredAtDate.Format(csvDateFormat),
		timeOrEmpty(row.LastSentAt),
		strOrEmpty(row.LastSentVia),
		row.AmountDue.String(),
		row.AmountPaid.String(),
		row.Total.String(),
		row.CustomerName,
		strOrEmpty(row.CustomerEmail),
		strOrEmpty(row.CustomerPhone),
		strOrEmpty(row.Company),
		row.Comment,
		row.Memo,
		strOrEmpty(row.ShippingAddressLine1),
		strOrEmpty(row.ShippingAddressLine2),
		strOrEmpty(row.ShippingAddressCity),
		strOrEmpty(row.ShippingAddressProvince),
		strOrEmpty(row.ShippingAddressCountry),
		strOrEmpty(row.ShippingAddressPostalCode),
		strOrEmpty(row.AddressLine1),
		strOrEmpty(row.AddressLine2),
		strOrEmpty(row.AddressCity),
		strOrEmpty(row.AddressProvince),
		strOrEmpty(row.AddressCountry),
		strOrEmpty(row.AddressPostalCode),
		strOrEmpty(row.UTMCampaign),
		strOrEmpty(row.UTMMedium),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
