package testutil

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/runforua/donorboard/internal/domain/invoice"
	"github.com/runforua/donorboard/internal/domain/tracking"
	"github.com/runforua/donorboard/internal/types"
)

// EncodeInvoiceID builds the composite identifier the accounting API uses:
// base64 of "Business: <businessID>;Invoice: <invoiceID>".
func EncodeInvoiceID(businessID, invoiceID string) string {
	raw := fmt.Sprintf("Business: %s;Invoice: %s", businessID, invoiceID)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// EncodeBusinessID builds the business GID: base64 of "Business: <id>".
func EncodeBusinessID(businessID string) string {
	return base64.StdEncoding.EncodeToString([]byte("Business: " + businessID))
}

// InvoiceOption mutates a fixture invoice.
type InvoiceOption func(*invoice.Invoice)

// NewInvoiceFixture builds a realistic paid invoice for the given campaign
// slug. Options override individual fields.
func NewInvoiceFixture(invoiceID, slug string, opts ...InvoiceOption) invoice.Invoice {
	email := "olena@example.com"
	inv := invoice.Invoice{
		ID:            EncodeInvoiceID("biz-1", invoiceID),
		InvoiceNumber: slug,
		Memo:          "Note: Slava Ukraini!",
		Status:        types.InvoiceStatusPaid,
		CreatedAt:     "2022-04-10T18:17:53Z",
		AmountDue:     invoice.Money{Value: "0.00"},
		AmountPaid:    invoice.Money{Value: "50.00"},
		Total:         invoice.Money{Value: "50.00"},
		Customer: invoice.Customer{
			ID:    "customer-1",
			Name:  "Olena Honcharenko",
			Email: &email,
			Address: &invoice.Address{
				City:    ptr("Lviv"),
				Country: &invoice.Region{Code: ptr("UA"), Name: ptr("Ukraine")},
			},
		},
	}
	for _, opt := range opts {
		opt(&inv)
	}
	return inv
}

// WithStatus overrides the invoice status.
func WithStatus(status types.InvoiceStatus) InvoiceOption {
	return func(inv *invoice.Invoice) { inv.Status = status }
}

// WithAmountPaid overrides the paid amount display string.
func WithAmountPaid(value string) InvoiceOption {
	return func(inv *invoice.Invoice) {
		inv.AmountPaid = invoice.Money{Value: value}
		inv.Total = invoice.Money{Value: value}
	}
}

// WithMemo overrides the memo text.
func WithMemo(memo string) InvoiceOption {
	return func(inv *invoice.Invoice) { inv.Memo = memo }
}

// WithCountry overrides the billing country name.
func WithCountry(name string) InvoiceOption {
	return func(inv *invoice.Invoice) {
		if inv.Customer.Address == nil {
			inv.Customer.Address = &invoice.Address{}
		}
		inv.Customer.Address.Country = &invoice.Region{Name: &name}
	}
}

// WithItems replaces the invoice line items.
func WithItems(items ...invoice.LineItem) InvoiceOption {
	return func(inv *invoice.Invoice) { inv.Items = items }
}

// NewLineItemFixture builds one line item.
func NewLineItemFixture(productName, quantity, unitPrice string) invoice.LineItem {
	return invoice.LineItem{
		Description: productName + " registration",
		Quantity:    json.Number(quantity),
		UnitPrice:   unitPrice,
		Product: invoice.Product{
			ID:   "product-" + productName,
			Name: productName,
		},
	}
}

// NewTrackingFixture builds one tracking record pointing at a donation.
func NewTrackingFixture(donationID, referrer string) tracking.Record {
	return tracking.Record{
		BusinessID: "biz-1",
		DonationID: donationID,
		Referrer:   referrer,
	}
}

func ptr(s string) *string {
	return &s
}
