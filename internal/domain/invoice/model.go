package invoice

import (
	"encoding/json"

	"github.com/runforua/donorboard/internal/types"
)

// Invoice is one invoice record as returned by the accounting GraphQL API.
// It is a read-only snapshot; all reshaping happens downstream in the
// projector, which is why the nested source structure is preserved here.
type Invoice struct {
	// ID is the opaque composite identifier (base64 of "Business: B;Invoice: I")
	ID string `json:"id"`

	Title         string `json:"title"`
	Subhead       string `json:"subhead"`
	InvoiceNumber string `json:"invoiceNumber"`
	Footer        string `json:"footer"`

	// Memo is donor-entered free text, optionally carrying labeled
	// "Company name:" and "Note:" sections
	Memo string `json:"memo"`

	Status types.InvoiceStatus `json:"status"`

	// LastSentAt is null for invoices that were never sent
	LastSentAt  *string `json:"lastSentAt"`
	LastSentVia *string `json:"lastSentVia"`
	CreatedAt   string  `json:"createdAt"`

	AmountDue  Money `json:"amountDue"`
	AmountPaid Money `json:"amountPaid"`
	Total      Money `json:"total"`

	Customer Customer   `json:"customer"`
	Items    []LineItem `json:"items"`
}

// Money is the API's two-faced amount: a raw minor-unit figure and a
// display string that may carry thousands separators.
type Money struct {
	Raw   json.Number `json:"raw"`
	Value string      `json:"value"`
}

// Customer is the donor sub-record owned by its parent invoice.
type Customer struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           *string          `json:"email"`
	Address         *Address         `json:"address"`
	ShippingDetails *ShippingDetails `json:"shippingDetails"`
}

// ShippingDetails carries the donor-entered shipping contact.
type ShippingDetails struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Address *Address `json:"address"`
}

// Address is a possibly-partial postal address. Every field may be null.
// The source sometimes conflates city and province into the city field;
// that is resolved downstream, not here.
type Address struct {
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	Province     *Region `json:"province"`
	Country      *Region `json:"country"`
	PostalCode   *string `json:"postalCode"`
}

// Region is a coded geographic name (province or country).
type Region struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// LineItem is one purchased line owned by its parent invoice.
type LineItem struct {
	Description string `json:"description"`
	// Quantity arrives as a JSON number or a quoted integer depending on
	// the API version, so it is decoded leniently
	Quantity  json.Number `json:"quantity"`
	UnitPrice string      `json:"unitPrice"`
	Product   Product     `json:"product"`
}

// Product references the catalog entry a line item was sold against.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
