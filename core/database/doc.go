// Package database handles the inventory store connection and schema inspection.
//
// It wraps GORM to open either a SQLite file (the default, matching the inventory
// database used by the web UI) or a MySQL server, based on the application's configuration.
//
// # Connect
//
// Connect opens the store and pings it once. The processor treats any failure as a
// connection failure and exits; there is no retry policy here.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// feature uses it to confirm the endpoints table carries every column the store writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "endpoints")
package database
