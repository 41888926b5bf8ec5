// Package http implements the REST API of the portfolio server.
//
// It wires chi routes, request handlers and middleware. Request tracing,
// access logging, CORS, compression and session authentication are
// handled here before requests are delegated to the service layer.
package http
