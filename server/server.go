package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/jonwraymond/statushub/auth"
	"github.com/jonwraymond/statushub/observe"
	"github.com/jonwraymond/statushub/status"
)

// Server serves the health and stats endpoints.
type Server struct {
	opts    Options
	guard   *auth.Guard
	health  status.Callback
	logger  observe.Logger
	handler http.Handler

	mu         sync.Mutex
	httpServer *http.Server
}

// New validates opts and builds a server. Invalid options are fatal: the
// returned error must prevent startup.
func New(opts Options) (*Server, error) {
	if opts.HealthPath == "" {
		opts.HealthPath = DefaultHealthPath
	}
	if opts.StatsPath == "" {
		opts.StatsPath = DefaultStatsPath
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	guard := opts.Guard
	if guard == nil {
		guard = auth.NewGuard(auth.GuardConfig{Token: opts.AccessToken})
	}

	logger := opts.Logger
	if logger == nil {
		logger = observe.NopLogger()
	}

	health := opts.Health
	if health == nil {
		health = status.Static(status.Map{})
	}

	s := &Server{
		opts:   opts,
		guard:  guard,
		health: health,
		logger: logger.WithComponent("server"),
	}

	var healthHandler http.Handler = http.HandlerFunc(s.handleHealth)
	var statsHandler http.Handler = http.HandlerFunc(s.handleStats)
	if opts.Middleware != nil {
		healthHandler = opts.Middleware.Wrap("health", healthHandler)
		statsHandler = opts.Middleware.Wrap("stats", statsHandler)
	}

	mux := http.NewServeMux()
	mux.Handle(opts.HealthPath, healthHandler)
	mux.Handle(opts.StatsPath, statsHandler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound)
	})
	s.handler = mux

	return s, nil
}

// Handler returns the server's HTTP handler for hosts that own the listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until Shutdown. The address is validated
// first; a malformed port is a configuration error.
func (s *Server) ListenAndServe(addr string) error {
	if err := ValidateAddr(addr); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	return srv.ListenAndServe()
}

// Shutdown stops accepting new requests and drains in-flight ones. It does
// not abort in-flight aggregations; those resolve or time out on their own.
// Worker hosts detach their cluster.Responder separately.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
