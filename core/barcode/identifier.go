package barcode

import (
	"fmt"
	"strings"
)

// NetworkIDLength is the width of a device network identifier.
const NetworkIDLength = 10

// Device is a decoded device barcode.
type Device struct {
	// Barcode is the normalised input.
	Barcode string `json:"barcode"`
	// NetworkID is the trailing NetworkIDLength characters of the barcode.
	NetworkID string `json:"network_id"`
	// Prefix is the product-type prefix, empty when the barcode carries none.
	Prefix string `json:"prefix,omitempty"`
	// Product is the classification of Prefix. Name and ID are empty for unmapped prefixes.
	Product Product `json:"product"`
}

// HasPrefix reports whether the scan carried a product-type prefix.
func (d Device) HasPrefix() bool {
	return d.Prefix != ""
}

// DecodeIdentifier extracts the network identifier and product prefix from a device barcode.
//
// Barcodes longer than NetworkIDLength carry their prefix in the leading characters.
// A barcode of the configured legacy length gets the configured legacy prefix.
// Barcodes shorter than NetworkIDLength are left-padded with zeros.
func (d *Decoder) DecodeIdentifier(barcode string) (Device, error) {
	b := normalize(barcode)
	if b == "" {
		return Device{}, ErrEmptyDevice
	}
	// Network ids are sliced by byte, so only single-byte characters are accepted.
	if !isPrintableASCII(barcode) {
		return Device{}, fmt.Errorf("%w: %q", ErrInvalidDevice, barcode)
	}

	dev := Device{Barcode: b}

	switch n := len(b); {
	case n > NetworkIDLength:
		dev.NetworkID = b[n-NetworkIDLength:]
		dev.Prefix = b[:n-NetworkIDLength]
	case n == NetworkIDLength:
		dev.NetworkID = b
	default:
		dev.NetworkID = strings.Repeat("0", NetworkIDLength-n) + b
		if d.cfg.LegacyLength > 0 && n == d.cfg.LegacyLength {
			dev.Prefix = d.cfg.LegacyPrefix
		}
	}

	if dev.Prefix != "" {
		product, ok := LookupProduct(dev.Prefix)
		if !ok && d.cfg.StrictProducts {
			return Device{}, fmt.Errorf("%w: %q in %s", ErrUnknownProduct, dev.Prefix, b)
		}
		dev.Product = product
	}

	return dev, nil
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x7f || (c < 0x20 && c != '\t' && c != '\n' && c != '\r') {
			return false
		}
	}
	return true
}
