// Package barcode decodes the two barcode families scanned in the field.
//
// # Location barcodes
//
// DecodeLocation matches a location barcode against an ordered, closed set of
// patterns. The first matching pattern wins; a barcode that matches none is
// rejected with ErrUnrecognizedLocation.
//
//   - Pillar:       PN1234<form><vvv>  -> code "12N34", prefix "P-"
//   - Porta-pillar: PMM3000            -> code "3",     prefix "PP-"
//   - Storage:      S42                -> code "4",     prefix "S-"
//   - Lab stock:    "Lab Stock Area"   -> code "xxxx",  prefix "L-" (opt-in)
//
// # Device barcodes
//
// DecodeIdentifier takes the trailing ten characters as the network identifier
// and any leading characters as a product-type prefix, which is resolved through
// a static product table. Unmapped prefixes are not an error unless strict mode is on.
package barcode
