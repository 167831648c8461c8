// Package server runs the loader's operational HTTP endpoint.
//
// It owns the listener lifecycle: startup, serving until the context is
// cancelled, and graceful shutdown with a bounded timeout.
package server
