package barcode

// Config holds the configurable decoding rules.
type Config struct {
	// LegacyLength is the device barcode length of the legacy device family
	// that carries no positional product prefix. Zero disables the rule.
	LegacyLength int `mapstructure:"legacy_length" default:"8"`
	// LegacyPrefix is the product-type tag assigned to legacy device barcodes.
	LegacyPrefix string `mapstructure:"legacy_prefix" default:"ERT"`
	// LabStock enables the lab stock area location pattern.
	LabStock bool `mapstructure:"lab_stock" default:"false"`
	// StrictProducts rejects device barcodes whose product prefix is not in the product table.
	StrictProducts bool `mapstructure:"strict_products" default:"false"`
}
