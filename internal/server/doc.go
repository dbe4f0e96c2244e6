// Package server runs the item API transports.
//
// The HTTP listener always serves the item routes; the gRPC listener, when
// an address is configured, serves only the standard health service. Both
// stop together on SIGINT, SIGTERM or SIGQUIT, or when either fails.
package server
