// Package http implements the HTTP and SSE transport layer of the sync
// server.
//
// It exposes route wiring, the check/pull/push/initial request handlers,
// the event stream handler, and cross-cutting middleware (request tracing,
// access logging, CORS) applied before requests reach the sync engine.
package http
