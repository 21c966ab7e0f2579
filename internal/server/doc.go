// Package server runs the HTTP server of the reference remote store.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
