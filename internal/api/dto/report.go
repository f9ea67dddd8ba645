package dto

import (
	"github.com/runforua/donorboard/internal/domain/report"
	"github.com/runforua/donorboard/internal/types"
)

// ListInvoiceRowsRequest carries the optional dashboard filters.
type ListInvoiceRowsRequest struct {
	Status  types.InvoiceStatus `form:"status"`
	SentVia types.SentVia       `form:"sent_via"`
	Search  string              `form:"search"`
}

func (r ListInvoiceRowsRequest) ToFilter() types.InvoiceRowFilter {
	return types.InvoiceRowFilter{
		Status:  r.Status,
		SentVia: r.SentVia,
		Search:  r.Search,
	}
}

// ListInvoiceRowsResponse wraps the projected invoice table.
type ListInvoiceRowsResponse struct {
	Items []report.InvoiceRow `json:"items"`
	Total int                 `json:"total"`
}

// ListItemRowsResponse wraps the per-line-item table.
type ListItemRowsResponse struct {
	Items []report.ItemRow `json:"items"`
	Total int              `json:"total"`
}
