package types

import "strings"

// InvoiceRowFilter narrows a projected invoice table down to the rows a
// dashboard view wants to show. The zero value matches every row.
type InvoiceRowFilter struct {
	// Status filters by invoice status; empty means all statuses
	Status InvoiceStatus `json:"status,omitempty" form:"status"`

	// SentVia filters by the last-sent channel; empty means all channels
	SentVia SentVia `json:"sent_via,omitempty" form:"sent_via"`

	// Search is a case-insensitive substring match over the row's
	// free-text columns (name, email, phone, city, invoice number)
	Search string `json:"search,omitempty" form:"search"`
}

// IsUnfiltered reports whether the filter matches every row.
func (f InvoiceRowFilter) IsUnfiltered() bool {
	return f.Status == "" && f.SentVia == "" && f.Search == ""
}

// MatchesText reports whether any of the given fields contains the
// search term, ignoring case. Nil fields never match.
func (f InvoiceRowFilter) MatchesText(fields ...*string) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), needle) {
			return true
		}
	}
	return false
}
