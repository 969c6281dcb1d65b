package server

import "strconv"

// Config holds configuration for the HTTP scan endpoint.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimit is the maximum request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"4096"`
}

// IsValidPort checks that the configured port is a TCP port number.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p <= 65535
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
