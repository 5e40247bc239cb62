// Package metrics provides the metrics registry behind the stats endpoint.
//
// Registry couples an OpenTelemetry meter provider to a Prometheus registry
// through the pull-based exporter: application code records measurements via
// otel instruments, and Snapshot serializes the current state in the
// Prometheus text exposition format.
//
// The stats endpoint streams whatever a Snapshotter returns. In
// single-process mode that is the local Registry; in multi-process mode the
// host supplies a Snapshotter that performs cross-process aggregation; this
// package does not implement that aggregation.
package metrics
