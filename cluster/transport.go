package cluster

// Transport connects a process to its named peers.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Ordering: messages sent to one peer are delivered in send order.
//   - Delivery: loss is permanent; there is no redelivery. Send must report
//     a disconnected peer with an error.
type Transport interface {
	// Peers returns the identifiers of currently connected peers.
	Peers() []string

	// Send delivers m to the named peer.
	Send(peer string, m Message) error

	// Listen registers fn for inbound messages and returns a function that
	// detaches it. Multiple listeners may be registered; each inbound
	// message is delivered to all of them.
	Listen(fn func(from string, m Message)) (stop func())
}
