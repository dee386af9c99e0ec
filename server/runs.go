// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/render"
)

// RunRequest is the body of POST /v1/runs.
type RunRequest struct {
	Engine string         `json:"engine"`
	Params map[string]any `json:"params"`
}

// Run executes one engine, records its events and persists the trace.
// Invalid input is returned before anything is stored; any other failure is
// stored with the trace and reported through its State and Error fields.
func (s *Server) Run(ctx context.Context, req RunRequest) (*core.Trace, error) {
	name := strings.ToLower(strings.TrimSpace(req.Engine))
	fn, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownEngine, req.Engine, strings.Join(Engines(), ", "))
	}
	if req.Params == nil {
		req.Params = map[string]any{}
	}

	rec := &core.Recorder{}
	done := s.metrics.StartRun(name)
	summary, used, err := fn(ctx, req.Params, limits{maxInput: s.maxInput}, core.Fanout(rec, s.metrics.Sink(name)))
	done(err)
	if errors.Is(err, core.ErrInvalidInput) {
		return nil, err
	}

	trace := core.NewTrace(name, used)
	trace.Finish(rec.Events(), err)
	trace.Summary = summary
	if err := s.store.Save(ctx, trace); err != nil {
		return nil, fmt.Errorf("server: save trace: %w", err)
	}
	s.log.Info("run finished",
		zap.String("id", trace.ID),
		zap.String("engine", name),
		zap.Stringer("state", trace.State),
		zap.Int("events", len(trace.Events)),
	)

	return trace, nil
}

func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("server: invalid request body: %v: %w", err, core.ErrInvalidInput))
		return
	}
	trace, err := s.Run(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, trace)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	traces, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	for _, t := range traces {
		t.Events = nil
	}
	s.writeJSON(w, http.StatusOK, traces)
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	trace, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, trace)
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	trace, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.Report(trace)))
}

func (s *Server) deleteRun(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
