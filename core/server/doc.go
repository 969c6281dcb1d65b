// Package server holds the HTTP scan endpoint configuration.
//
// The `serve` command uses it to bind the Fiber application and to configure
// the API key middleware. Scanner hosts that cannot run the processor binary
// locally post their scans to this endpoint instead.
package server
