package barcode

import "errors"

var (
	// ErrUnrecognizedLocation is returned when a location barcode matches no known pattern.
	ErrUnrecognizedLocation = errors.New("location barcode not recognized")
	// ErrUnknownProduct is returned in strict mode for a product prefix missing from the product table.
	ErrUnknownProduct = errors.New("product prefix not recognized")
	// ErrEmptyDevice is returned for a blank device barcode.
	ErrEmptyDevice = errors.New("device barcode is empty")
	// ErrInvalidDevice is returned for a device barcode with characters outside printable ASCII.
	ErrInvalidDevice = errors.New("device barcode contains invalid characters")
)
