package reconcile

import (
	"context"
	"fmt"
)

// Reconcile performs one lookup-decide-write cycle for a scan.
//
// The record is read once, immediately before the decision. No lock is held
// between the read and the write: two processes racing on the same device
// resolve as last writer wins.
func Reconcile(ctx context.Context, store Store, scan Scan) (*Result, error) {
	existing, err := store.Lookup(ctx, scan.Device.NetworkID)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup %s: %w", ErrConnection, scan.Device.NetworkID, err)
	}

	action, outcome := Plan(existing, scan)

	if err := Apply(ctx, store, action); err != nil {
		return nil, err
	}

	return &Result{
		Outcome:  outcome,
		Action:   action,
		Existing: existing,
	}, nil
}
