package cluster

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/statushub/observe"
	"github.com/jonwraymond/statushub/status"
)

// DefaultTimeout is the per-request aggregation deadline.
const DefaultTimeout = 5000 * time.Millisecond

// CoordinatorConfig configures the aggregation coordinator.
type CoordinatorConfig struct {
	// Timeout is the deadline of one aggregation request, measured from
	// creation. Default: 5 s.
	Timeout time.Duration

	// Logger receives fan-out diagnostics. Default: no-op.
	Logger observe.Logger

	// Metrics records aggregation outcomes. Default: no-op.
	Metrics observe.Metrics
}

// Coordinator owns the table of in-flight aggregation requests and runs the
// fan-out protocol against worker peers.
//
// The table is mutated only under the coordinator's mutex, from three
// callbacks: fan-out bookkeeping, inbound replies, and timer expiry. Each
// entry's fulfilled flag transitions false to true exactly once, so the
// reply handler and the timer race-check safely.
type Coordinator struct {
	config    CoordinatorConfig
	transport Transport
	logger    observe.Logger
	metrics   observe.Metrics

	mu       sync.Mutex
	inflight map[uint64]*aggregation

	lastID   atomic.Uint64
	stopOnce sync.Once
	stop     func()
}

// aggregation is the tracked state of one in-flight fan-out.
type aggregation struct {
	id        uint64
	merged    status.Map
	pending   int
	fulfilled bool
	timer     *time.Timer
	done      chan outcome
}

type outcome struct {
	status status.Map
	err    error
}

// NewCoordinator creates a coordinator on top of transport and attaches its
// reply listener.
func NewCoordinator(transport Transport, config ...CoordinatorConfig) *Coordinator {
	cfg := CoordinatorConfig{Timeout: DefaultTimeout}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = DefaultTimeout
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = observe.NopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observe.NopMetrics()
	}

	c := &Coordinator{
		config:    cfg,
		transport: transport,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		inflight:  make(map[uint64]*aggregation),
	}
	c.stop = transport.Listen(c.handleMessage)
	return c
}

// NextRequestID returns a fresh, process-unique request identifier.
// Identifiers are assigned monotonically and never reused.
func (c *Coordinator) NextRequestID() uint64 {
	return c.lastID.Add(1)
}

// InFlight returns the number of aggregation requests currently tracked.
func (c *Coordinator) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.inflight)
}

// Gather fans a health query out to every connected worker and blocks until
// the merged status is complete, a worker reports an error, or the deadline
// fires.
//
// The merged result is local overwritten key-wise by each worker's status in
// reply-arrival order. With zero connected workers the call still resolves
// asynchronously, with a clone of local.
//
// Cancelling ctx abandons the wait but never aborts the aggregation: it runs
// to completion or timeout and its result is discarded.
func (c *Coordinator) Gather(ctx context.Context, requestID uint64, local status.Map) (status.Map, error) {
	start := time.Now()
	peers := c.transport.Peers()

	done := make(chan outcome, 1)
	if len(peers) == 0 {
		// Resolve off the caller's stack so the zero-worker path keeps the
		// same asynchronous contract as a real fan-out.
		go func() { done <- outcome{status: local.Clone()} }()
	} else {
		c.fanOut(requestID, local.Clone(), peers, done)
	}

	select {
	case out := <-done:
		c.metrics.RecordAggregation(ctx, len(peers), time.Since(start), outcomeLabel(out.err))
		if out.err != nil {
			return nil, out.err
		}
		return out.status, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close detaches the coordinator's reply listener. In-flight aggregations
// are not aborted; without replies they resolve by timeout.
func (c *Coordinator) Close() {
	c.stopOnce.Do(func() {
		if c.stop != nil {
			c.stop()
		}
	})
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return observe.OutcomeOK
	case errors.Is(err, ErrTimeout):
		return observe.OutcomeTimeout
	default:
		return observe.OutcomeWorkerError
	}
}

// fanOut registers the request in the table, arms its timer, and sends the
// tagged request to every enumerated peer. The pending count is the size of
// the connected set at enumeration time; a peer whose send fails is skipped.
func (c *Coordinator) fanOut(requestID uint64, seed status.Map, peers []string, done chan outcome) {
	a := &aggregation{
		id:      requestID,
		merged:  seed,
		pending: len(peers),
		done:    done,
	}

	c.mu.Lock()
	a.timer = time.AfterFunc(c.config.Timeout, func() { c.expire(requestID) })
	c.inflight[requestID] = a
	c.mu.Unlock()

	req := Message{Kind: KindStatsRequest, RequestID: requestID}

	var g errgroup.Group
	for _, peer := range peers {
		peer := peer
		g.Go(func() error {
			if err := c.transport.Send(peer, req); err != nil {
				c.logger.Warn(context.Background(), "fan-out send failed",
					observe.Field{Key: "peer", Value: peer},
					observe.Field{Key: "request_id", Value: requestID},
					observe.Field{Key: "error", Value: err.Error()})
				c.skip(requestID)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// handleMessage processes one inbound worker reply. Replies for requests
// that already resolved find no table entry and are dropped.
func (c *Coordinator) handleMessage(from string, m Message) {
	if m.Kind != KindStatsResponse {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.inflight[m.RequestID]
	if !ok || a.fulfilled {
		return
	}

	if m.Error != "" {
		// A single worker error aborts the whole aggregation; pending
		// replies for this request are ignored from here on.
		c.resolveLocked(a, outcome{err: &WorkerError{Peer: from, Reason: m.Error}})
		return
	}

	a.merged.Merge(m.Status)
	a.pending--
	if a.pending == 0 {
		c.resolveLocked(a, outcome{status: a.merged})
	}
}

// skip removes one expected reply after a failed send.
func (c *Coordinator) skip(requestID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.inflight[requestID]
	if !ok || a.fulfilled {
		return
	}

	a.pending--
	if a.pending == 0 {
		c.resolveLocked(a, outcome{status: a.merged})
	}
}

// expire forces completion with a timeout error if the request is still
// unfulfilled when its timer fires.
func (c *Coordinator) expire(requestID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.inflight[requestID]
	if !ok || a.fulfilled {
		return
	}

	c.resolveLocked(a, outcome{err: ErrTimeout})
}

// resolveLocked fulfills a exactly once and removes it from the table.
// Callers must hold c.mu.
func (c *Coordinator) resolveLocked(a *aggregation, out outcome) {
	a.fulfilled = true
	delete(c.inflight, a.id)
	if a.timer != nil {
		a.timer.Stop()
	}
	a.done <- out
}
