package invoice

import "context"

// Repository defines read access to the remote invoice source. There are
// no writes: invoices are owned by the accounting system.
type Repository interface {
	// ListBySlug returns every invoice whose invoice number matches the
	// campaign slug, fully materialized across all pages.
	ListBySlug(ctx context.Context, slug string) ([]Invoice, error)
}
