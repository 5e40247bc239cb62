// Package server exposes the health-status and metrics-snapshot endpoints.
//
// A Server routes exactly two GET paths (default "/health" and "/stats");
// every other path or method yields 404. Both endpoints pass through the
// access guard, respond with cache-disabling and permissive CORS headers,
// and collapse internal failures into a bare 500.
//
// In single-process mode the health endpoint serializes the local health
// callback's result. With a cluster.Coordinator attached, the callback's
// result seeds a fan-out aggregation across worker peers and the merged map
// is returned instead.
//
// The server does not own process lifecycle: hosts call ListenAndServe (or
// mount Handler on their own listener) and Shutdown. Worker processes detach
// their cluster.Responder themselves on shutdown.
package server
