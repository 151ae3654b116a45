// Package metrics exposes the service's Prometheus metrics.
//
// Each process gets an isolated registry with a constant service label, the
// standard Go/process/build-info collectors, and the service counters:
// searches by filter source and outcome, store errors, and HTTP request
// durations. The registry is served on its own HTTP server at /metrics,
// separate from the API server.
package metrics
