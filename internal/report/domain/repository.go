package domain

import "context"

// Repository is the read-only port onto the relational source. Both fetches
// materialize the full result set; a failed query returns no partial rows.
type Repository interface {
	// Ping verifies the source connection before any extraction work.
	Ping(ctx context.Context) error
	// FetchOrderLines returns every order line in order_details_id order.
	FetchOrderLines(ctx context.Context) ([]OrderLine, error)
	// FetchMenuItems returns every menu item.
	FetchMenuItems(ctx context.Context) ([]MenuItem, error)
}
