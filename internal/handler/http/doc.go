// Package http implements the loader's operational HTTP endpoints.
//
// It exposes Prometheus metrics, a health check, the staging outbox counters
// and manual flush and requeue triggers. Request tracing, access logging and
// panic recovery are handled here before requests reach the service layer.
package http
