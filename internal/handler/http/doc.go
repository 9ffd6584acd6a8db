// Package http implements the HTTP transport layer of the catalog server.
//
// It exposes route wiring, request handlers and middleware for the read-only
// catalog API: pricing plans, access-code formats and the server version.
// Cross-cutting concerns such as request tracing, access logging, per-client
// rate limiting, response compression and Prometheus instrumentation are
// handled in this package before requests reach the service layer.
package http
