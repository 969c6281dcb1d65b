// Package endpoints implements scan processing for inventory endpoint devices.
//
// It binds the barcode decoder and the reconciler to the 'endpoints' table:
//  1. Decode: device barcode to network id and product, location barcode to location fields.
//  2. Reconcile: one lookup, then insert, update the location, clear it, or refuse.
//  3. Report: outcome mapped to the processor exit code.
//
// # Components
//
//   - Store: reconcile.Store on GORM (sqlite or mysql).
//   - Service: Process, Decode, Lookup and Export.
//   - Handler: HTTP endpoints for scanner hosts.
//   - Feature: registers the handler with the loader.
//
// # Exit codes
//
//	0  success
//	1  store connection failure
//	2  commit failure
//	3  removal blocked by a user or comment annotation
//	4  unrecognized location barcode or product prefix
//	10 removal requested for a device not in the store
//
// # HTTP Endpoints
//
//   - POST /scans : Process a scan ({"device": "...", "location": "..."}).
//   - GET /decode : Decode barcodes without touching the store.
//   - GET /endpoints/:barcode : Stored record of a device.
//   - POST /endpoints/export : Upload a location snapshot to object storage.
package endpoints
