// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the HTTP server's lifecycle, including
// startup and graceful shutdown when its context is cancelled.
package server
