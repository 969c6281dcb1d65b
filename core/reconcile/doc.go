// Package reconcile decides and applies the store write for a decoded scan.
//
// A scan either places a device (device and location barcodes) or removes it
// (device barcode alone). Given the record read right before the decision, the
// reconciler picks exactly one terminal state:
//
//	existing  location  annotated  action            outcome
//	no        yes       -          insert            inserted
//	yes       yes       -          update_location   updated
//	yes       no        no         clear_location    cleared
//	yes       no        yes        none              blocked
//	no        no        -          none              not_found
//
// Clearing empties the location columns and keeps the row. A record carrying a
// user or comment annotation is never cleared automatically.
//
// # Components
//
//   - Plan: pure decision function, no I/O.
//   - Apply: executes an Action through the Store interface.
//   - Reconcile: Lookup, Plan and Apply in one call.
//
// # Errors
//
// Lookup failures are wrapped with ErrConnection and write failures with
// ErrCommit. Blocked and not-found are outcomes, not errors.
//
// # Usage Example
//
//	scan := reconcile.Scan{Device: dev, Location: loc}
//	result, err := reconcile.Reconcile(ctx, store, scan)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Outcome)
package reconcile
