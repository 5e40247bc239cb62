package server

import (
	"net/http"

	"github.com/jonwraymond/statushub/observe"
)

// handleHealth orchestrates a single health query: guard, local callback,
// and, with a coordinator attached, the cluster-wide aggregation.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeStatus(w, http.StatusNotFound)
		return
	}
	if !s.guard.Check(r) {
		writeStatus(w, http.StatusForbidden)
		return
	}

	ctx := r.Context()

	local, err := s.health(ctx)
	if err != nil {
		s.logger.Error(ctx, "health callback failed",
			observe.Field{Key: "error", Value: err.Error()})
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	if s.opts.Coordinator == nil {
		writeJSON(w, http.StatusOK, local)
		return
	}

	// Every inbound query gets a fresh request identifier; concurrent
	// queries aggregate independently.
	requestID := s.opts.Coordinator.NextRequestID()
	merged, err := s.opts.Coordinator.Gather(ctx, requestID, local)
	if err != nil {
		s.logger.Error(ctx, "aggregation failed",
			observe.Field{Key: "request_id", Value: requestID},
			observe.Field{Key: "error", Value: err.Error()})
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, merged)
}

// handleStats streams a metrics snapshot: the local registry's, or the
// cluster-aggregated one in multi-process mode.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeStatus(w, http.StatusNotFound)
		return
	}
	if !s.guard.Check(r) {
		writeStatus(w, http.StatusForbidden)
		return
	}

	ctx := r.Context()

	snap := s.opts.Registry
	if s.opts.Coordinator != nil && s.opts.ClusterRegistry != nil {
		snap = s.opts.ClusterRegistry
	}

	body, err := snap.Snapshot(ctx)
	if err != nil {
		s.logger.Error(ctx, "metrics snapshot failed",
			observe.Field{Key: "error", Value: err.Error()})
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	writeBody(w, http.StatusOK, snap.ContentType(), body)
}
