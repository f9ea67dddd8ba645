package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/runforua/donorboard/internal/types"
)

// InvoiceRow is one flattened, typed report row per invoice. Rows are
// derived on every fetch and never persisted.
type InvoiceRow struct {
	// ID is the decoded invoice id (the invoice segment of the composite
	// identifier), which is also the join key toward tracking records
	ID string `json:"id"`

	Memo string `json:"memo"`

	// Comment and Company are parsed out of the memo's labeled sections;
	// Company is nil when the donor gave none
	Comment string  `json:"comment"`
	Company *string `json:"company"`

	Status        types.InvoiceStatus `json:"status"`
	InvoiceNumber string              `json:"invoice_number"`

	LastSentAt  *time.Time `json:"last_sent_at"`
	LastSentVia *string    `json:"last_sent_via"`

	RegisteredAt     time.Time `json:"registered_at"`
	RegisteredAtDate time.Time `json:"registered_at_date"`

	AmountDue  decimal.Decimal `json:"amount_due"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	Total      decimal.Decimal `json:"total"`

	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`

	ShippingAddressLine1      *string `json:"shipping_address_line_1"`
	ShippingAddressLine2      *string `json:"shipping_address_line_2"`
	ShippingAddressCity       *string `json:"shipping_address_city"`
	ShippingAddressProvince   *string `json:"shipping_address_province"`
	ShippingAddressCountry    *string `json:"shipping_address_country"`
	ShippingAddressPostalCode *string `json:"shipping_address_postal_code"`

	AddressLine1      *string `json:"address_line_1"`
	AddressLine2      *string `json:"address_line_2"`
	AddressCity       *string `json:"address_city"`
	AddressProvince   *string `json:"address_province"`
	AddressCountry    *string `json:"address_country"`
	AddressPostalCode *string `json:"address_postal_code"`

	// UTM columns are filled by the tracking join; nil when no tracking
	// record matched this invoice
	UTMCampaign *string `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
}

// Address is the flat 6-field output of address normalization.
type Address struct {
	Line1      *string
	Line2      *string
	City       *string
	Province   *string
	Country    *string
	PostalCode *string
}

// ItemRow is one report row per (invoice, line item) pair: all invoice
// columns replicated, plus the item and product columns.
type ItemRow struct {
	InvoiceRow

	Quantity    int64           `json:"quantity"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
}

// TrackingRow is one attribution record with its UTM columns derived from
// the referrer URL.
type TrackingRow struct {
	DonationID  string `json:"donation_id"`
	Referrer    string `json:"referrer"`
	UTMCampaign string `json:"utm_campaign"`
	UTMMedium   string `json:"utm_medium"`
}

// Summary holds the headline dashboard metrics for one campaign.
type Summary struct {
	// TotalCollected is the sum of amount_paid over PAID rows
	TotalCollected decimal.Decimal `json:"total_collected"`
	// TotalDonated counts PAID rows
	TotalDonated int `json:"total_donated"`
	// TotalAbandoned counts rows that were presented but never paid
	// (every status except PAID and DRAFT)
	TotalAbandoned int `json:"total_abandoned"`
}

// BreakdownRow is one bucket of a grouped aggregate (by country, item
// name, or UTM value).
type BreakdownRow struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// CampaignSummary is the full dashboard payload for one campaign: the
// headline metrics plus every grouped breakdown the views render.
type CampaignSummary struct {
	Campaign      string         `json:"campaign"`
	Summary       Summary        `json:"summary"`
	ByCountry     []BreakdownRow `json:"by_country"`
	ByItem        []BreakdownRow `json:"by_item"`
	ByUTMCampaign []BreakdownRow `json:"by_utm_campaign"`
	ByUTMMedium   []BreakdownRow `json:"by_utm_medium"`
}
