// Package status defines the key-value health status model shared by the
// HTTP handlers and the cluster aggregation protocol.
//
// A status is a flat map of component names to arbitrary JSON-encodable
// values. Maps from multiple processes are combined with Merge, which applies
// key-wise overwrite: when two maps carry the same key, the later one wins.
//
// # Basic Usage
//
//	local := status.Map{"uptime": 42, "db": "ok"}
//	remote := status.Map{"db": "degraded"}
//
//	merged := local.Clone()
//	merged.Merge(remote)
//	// merged["db"] == "degraded"
//
// A Callback produces the local status of one process on demand. Hosts
// register a Callback with the server and, on worker processes, with the
// cluster responder.
package status
