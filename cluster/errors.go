package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates an aggregation did not collect every worker
	// reply within its deadline.
	ErrTimeout = errors.New("cluster: aggregation timed out")

	// ErrPeerDisconnected indicates a send to a peer that is no longer
	// connected.
	ErrPeerDisconnected = errors.New("cluster: peer disconnected")

	// ErrClosed indicates an operation on a closed endpoint.
	ErrClosed = errors.New("cluster: endpoint closed")
)

// WorkerError reports an explicit failure from a worker peer. A single
// worker error aborts the whole aggregation.
type WorkerError struct {
	// Peer is the identifier of the failing worker.
	Peer string

	// Reason is the error text the worker reported.
	Reason string
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("cluster: worker %s failed: %s", e.Peer, e.Reason)
}
