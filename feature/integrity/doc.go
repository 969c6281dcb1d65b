// Package integrity validates the store behind the scan processor.
//
// # Checks Provided
//
//   - Schema: Validates that the endpoints table carries every column the
//     store reads and writes, with the declared type where the model pins one.
//
// # HTTP Endpoints
//
//   - GET /integrity/schema : Runs the schema check.
package integrity
