package cluster

import (
	"fmt"
	"sort"
	"sync"
)

// Network is an in-process transport fabric connecting named endpoints. It
// satisfies the transport assumptions of this package: delivery to a named
// peer, per-peer ordering (each endpoint drains a single inbox), and
// disconnection reported from Send. Intended for tests and single-host
// worker pools.
type Network struct {
	mu        sync.Mutex
	endpoints map[string]*Endpoint
}

// NewNetwork creates an empty fabric.
func NewNetwork() *Network {
	return &Network{endpoints: make(map[string]*Endpoint)}
}

// Endpoint joins the fabric under name and returns the endpoint. Joining an
// existing name returns the already-connected endpoint.
func (n *Network) Endpoint(name string) *Endpoint {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ep, ok := n.endpoints[name]; ok {
		return ep
	}

	ep := &Endpoint{
		name:      name,
		network:   n,
		inbox:     make(chan envelope, 64),
		done:      make(chan struct{}),
		listeners: make(map[int]func(from string, m Message)),
	}
	n.endpoints[name] = ep
	go ep.deliver()
	return ep
}

func (n *Network) lookup(name string) (*Endpoint, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ep, ok := n.endpoints[name]
	return ep, ok
}

func (n *Network) remove(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.endpoints, name)
}

func (n *Network) peersOf(name string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	peers := make([]string, 0, len(n.endpoints))
	for other := range n.endpoints {
		if other != name {
			peers = append(peers, other)
		}
	}
	sort.Strings(peers)
	return peers
}

// Endpoint is one process's attachment to a Network. It implements
// Transport.
type Endpoint struct {
	name    string
	network *Network
	inbox   chan envelope
	done    chan struct{}

	mu        sync.Mutex
	closed    bool
	nextID    int
	listeners map[int]func(from string, m Message)
}

type envelope struct {
	from string
	msg  Message
}

// Name returns the endpoint's peer identifier on the fabric.
func (e *Endpoint) Name() string {
	return e.name
}

// Peers returns the names of every other endpoint currently on the fabric.
func (e *Endpoint) Peers() []string {
	return e.network.peersOf(e.name)
}

// Send delivers m to the named peer. It reports ErrPeerDisconnected when the
// peer has left the fabric and ErrClosed when e itself is closed.
func (e *Endpoint) Send(peer string, m Message) error {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return fmt.Errorf("%w: %s", ErrClosed, e.name)
	}

	target, ok := e.network.lookup(peer)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPeerDisconnected, peer)
	}
	return target.enqueue(e.name, m)
}

// Listen registers fn for inbound messages. The returned function detaches
// it.
func (e *Endpoint) Listen(fn func(from string, m Message)) (stop func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.listeners, id)
		e.mu.Unlock()
	}
}

// Close disconnects the endpoint from the fabric. Messages not yet delivered
// are dropped; senders targeting this endpoint observe ErrPeerDisconnected.
func (e *Endpoint) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.done)
	e.mu.Unlock()

	e.network.remove(e.name)
}

func (e *Endpoint) enqueue(from string, m Message) error {
	select {
	case e.inbox <- envelope{from: from, msg: m}:
		return nil
	case <-e.done:
		return fmt.Errorf("%w: %s", ErrPeerDisconnected, e.name)
	}
}

// deliver drains the inbox on a single goroutine, which preserves per-peer
// delivery order.
func (e *Endpoint) deliver() {
	for {
		select {
		case env := <-e.inbox:
			e.mu.Lock()
			fns := make([]func(string, Message), 0, len(e.listeners))
			for _, fn := range e.listeners {
				fns = append(fns, fn)
			}
			e.mu.Unlock()

			for _, fn := range fns {
				fn(env.from, env.msg)
			}
		case <-e.done:
			return
		}
	}
}

// Endpoint implements Transport.
var _ Transport = (*Endpoint)(nil)
