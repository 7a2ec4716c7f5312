// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the exposure mode.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the server mode
// (full or readonly). In readonly mode the ingest trigger routes are not
// registered.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to decide which routes to mount.
package server
