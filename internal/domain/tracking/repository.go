package tracking

import "context"

// Repository defines read access to the click-tracking store.
type Repository interface {
	// ListAll returns every tracking record for the store's business,
	// fully materialized across all result pages.
	ListAll(ctx context.Context) ([]Record, error)
}
