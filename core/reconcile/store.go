package reconcile

import "context"

// Store is the minimal contract the reconciler needs from the inventory store.
// Every write must be durable when it returns.
type Store interface {
	// Lookup returns the record for networkID, or nil when there is none.
	// The returned record must include the user and comment annotations.
	Lookup(ctx context.Context, networkID string) (*Record, error)

	// Insert creates a new record.
	Insert(ctx context.Context, record Record) error

	// UpdateLocation overwrites the location columns of an existing record,
	// and the product columns only when update.Product is set.
	UpdateLocation(ctx context.Context, networkID string, update LocationUpdate) error

	// ClearLocation empties the location and location prefix of an existing record.
	ClearLocation(ctx context.Context, networkID string) error
}
