// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development (debug) and
// a production profile, with console or json encoding. Logs go to stderr so that the
// processor's single status line on stdout stays machine readable.
//
// # Context Awareness
//
// WithRayID attaches the request id set by the rayid middleware to log entries of
// the HTTP scan endpoint. WithScan attaches the raw barcodes of a scan event.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Connected to database")
//
//	l := logger.WithScan(log, device, location)
//	l.Info("Scan processed", zap.String("outcome", "updated"))
package logger
