package barcode

import (
	"strings"
	"time"
)

// Decoder turns raw scanner input into structured device and location values.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	cfg Config
	now func() time.Time
}

// NewDecoder creates a decoder with the given rules and the wall clock.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{cfg: cfg, now: time.Now}
}

// WithClock returns a copy of the decoder that stamps locations with now.
func (d *Decoder) WithClock(now func() time.Time) *Decoder {
	c := *d
	c.now = now
	return &c
}

// normalize strips surrounding whitespace and upper-cases scanner input.
func normalize(barcode string) string {
	return strings.ToUpper(strings.TrimSpace(barcode))
}
