package cluster

import "github.com/jonwraymond/statushub/status"

// Kind discriminates the wire messages exchanged between the coordinator and
// its workers.
type Kind string

const (
	// KindStatsRequest asks a worker for its local health status.
	KindStatsRequest Kind = "getStatsRequest"

	// KindStatsResponse carries a worker's reply, either a status map or an
	// error text.
	KindStatsResponse Kind = "getStatsResponse"
)

// Message is the unit of the coordinator/worker wire contract. It is
// JSON-encodable for transports that carry bytes.
type Message struct {
	Kind      Kind       `json:"kind"`
	RequestID uint64     `json:"requestId"`
	Status    status.Map `json:"healthStatus,omitempty"`
	Error     string     `json:"error,omitempty"`
}
