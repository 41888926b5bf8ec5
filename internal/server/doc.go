// Package server runs the public HTTP API and the read-only gRPC API side by
// side. Either transport is skipped when its address is empty; both are
// drained on SIGTERM, SIGINT or SIGQUIT.
package server
