// Package server wires and runs the catalog API server.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
