// Package server runs the stub's HTTP transport.
//
// It covers the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
