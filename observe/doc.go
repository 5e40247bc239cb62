// Package observe provides observability primitives for the status service.
//
// It is a pure instrumentation library: no routing, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into the HTTP server
// and the cluster coordinator.
//
// An Observer bundles a tracer, a meter, and a structured logger behind one
// configuration. Metrics records HTTP request and cluster aggregation
// outcomes as OpenTelemetry instruments. Middleware wraps HTTP handlers with
// all three.
package observe
