// Package config provides configuration management for autoscan.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each setting as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Database: store driver (sqlite, mysql) and connection details
//   - Scan: barcode decoding rules (legacy device class, lab stock pattern, strict products)
//   - Log: Logging level and format
//   - Server: HTTP scan endpoint port and API key
//   - Storage: S3/MinIO credentials and bucket for snapshot exports
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Name)
package config
