// Package cluster implements the fan-out aggregation protocol between a
// coordinating process and its worker peers.
//
// When a health query reaches the coordinator in multi-process mode, the
// Coordinator fans a tagged request out to every connected worker, collects
// the correlated replies, merges each worker's status into the local one
// (key-wise overwrite, last writer wins), and resolves the query exactly
// once: when all replies have arrived, when a worker reports an error, or
// when the per-request deadline fires.
//
// # Roles
//
// The Coordinator runs in the process that accepts HTTP traffic. It owns a
// table of in-flight aggregation requests keyed by request identifier;
// replies that arrive after a request resolved find no table entry and are
// dropped.
//
// The Responder runs in each worker. On receiving a request it invokes the
// worker's local health callback and sends exactly one correlated reply,
// carrying either the status map or the callback's error text.
//
// # Transport
//
// Message passing between processes is delegated to a Transport. The package
// assumes delivery to a named peer, per-peer ordering, and disconnection
// reported from Send; it provides Network, an in-process implementation of
// those guarantees, for tests and single-host worker pools.
//
// # Failure Semantics
//
// A single worker error aborts the whole aggregation: the caller receives a
// WorkerError and later replies for that request are ignored. A worker that
// never replies causes the request to fail with ErrTimeout once the deadline
// (default 5 s) fires. There is no retry; a worker that errors or disconnects
// is excluded for that request only.
package cluster
