// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in the start command; this package
// only owns the config section so that core/config can compose it alongside
// the storage, log, and exclusion sections.
package server
