// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/internal/metrics"
	"github.com/katalvlaran/stepwise/store"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	store      store.Store
	metrics    *metrics.Metrics
	log        *zap.Logger
	containers config.ContainersConfig
	maxInput   int
	sessions   *registry
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the collectors fed by runs and container operations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithContainers sizes the containers of new sessions.
func WithContainers(c config.ContainersConfig) Option {
	return func(s *Server) { s.containers = c }
}

// WithMaxInput bounds the data arrays a run may take. Panics if n < 1.
func WithMaxInput(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("server: WithMaxInput(%d)", n))
	}

	return func(s *Server) { s.maxInput = n }
}

// New returns a Server persisting traces in st.
func New(st store.Store, opts ...Option) *Server {
	s := &Server{
		store:      st,
		log:        zap.NewNop(),
		containers: config.Default().Containers,
		maxInput:   config.DefaultMaxInput,
		sessions:   newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(nil)
	}

	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/runs", func(r chi.Router) {
			r.Post("/", s.createRun)
			r.Get("/", s.listRuns)
			r.Get("/{id}", s.getRun)
			r.Get("/{id}/report", s.getReport)
			r.Delete("/{id}", s.deleteRun)
		})
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.createSession)
			r.Get("/{id}", s.getSession)
			r.Post("/{id}/ops", s.applyOp)
			r.Delete("/{id}", s.deleteSession)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
