// Package database handles database connections for the catalog.
//
// It provides a thin wrapper around GORM that configures the connection based
// on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection using the configured driver.
// MySQL is used in production; the sqlite driver backs tests and local
// development with an in-memory or file database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
