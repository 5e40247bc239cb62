package cluster

import (
	"context"
	"sync"

	"github.com/jonwraymond/statushub/observe"
	"github.com/jonwraymond/statushub/status"
)

// ResponderConfig configures the worker-side responder.
type ResponderConfig struct {
	// Logger receives reply diagnostics. Default: no-op.
	Logger observe.Logger
}

// Responder runs in each worker peer. On receiving a status request from the
// coordinator it invokes the worker's local health callback and sends back
// exactly one correlated reply: the status map on success, the error text on
// failure. There is no retry.
type Responder struct {
	transport Transport
	callback  status.Callback
	logger    observe.Logger

	stopOnce sync.Once
	stop     func()
}

// NewResponder creates a responder around callback and attaches its message
// listener to transport.
func NewResponder(transport Transport, callback status.Callback, config ...ResponderConfig) *Responder {
	cfg := ResponderConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NopLogger()
	}

	r := &Responder{
		transport: transport,
		callback:  callback,
		logger:    cfg.Logger,
	}
	r.stop = transport.Listen(r.handleMessage)
	return r
}

// Detach unhooks the responder's message listener. Requests already being
// answered still send their reply.
func (r *Responder) Detach() {
	r.stopOnce.Do(func() {
		if r.stop != nil {
			r.stop()
		}
	})
}

func (r *Responder) handleMessage(from string, m Message) {
	if m.Kind != KindStatsRequest {
		return
	}
	go r.respond(from, m.RequestID)
}

func (r *Responder) respond(to string, requestID uint64) {
	ctx := context.Background()

	reply := Message{Kind: KindStatsResponse, RequestID: requestID}

	local, err := r.callback(ctx)
	if err != nil {
		reply.Error = err.Error()
	} else {
		reply.Status = local
	}

	if err := r.transport.Send(to, reply); err != nil {
		r.logger.Warn(ctx, "status reply send failed",
			observe.Field{Key: "peer", Value: to},
			observe.Field{Key: "request_id", Value: requestID},
			observe.Field{Key: "error", Value: err.Error()})
	}
}
