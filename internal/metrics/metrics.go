// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for engine runs. Collection is
// a Sink concern: engines stay unaware of it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stepwise/core"
)

// Metrics holds the stepwise collectors registered on one registry.
type Metrics struct {
	reg      *prometheus.Registry
	runs     *prometheus.CounterVec
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	ops      *prometheus.CounterVec
	sessions prometheus.Gauge
}

// New registers the collectors on reg. A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		reg: reg,
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_runs_total",
				Help: "Engine runs by terminal state.",
			},
			[]string{"engine", "state"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_steps_total",
				Help: "Step events emitted by engines.",
			},
			[]string{"engine", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepwise_run_duration_seconds",
				Help:    "Wall time of engine runs.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"engine"},
		),
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_container_ops_total",
				Help: "Container operations by outcome.",
			},
			[]string{"container", "op", "outcome"},
		),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepwise_sessions_active",
			Help: "Open container sessions.",
		}),
	}
	reg.MustRegister(m.runs, m.steps, m.duration, m.ops, m.sessions)

	return m
}

// Sink counts every event under engine. It never rejects an event.
func (m *Metrics) Sink(engine string) core.Sink {
	return core.SinkFunc(func(ev core.Event) error {
		m.steps.WithLabelValues(engine, ev.Kind.String()).Inc()
		return nil
	})
}

// StartRun starts the duration timer for engine. The returned func records
// the terminal state of err and stops the timer.
func (m *Metrics) StartRun(engine string) func(err error) {
	start := time.Now()

	return func(err error) { m.ObserveRun(engine, time.Since(start), err) }
}

// ObserveRun records a finished run of known duration.
func (m *Metrics) ObserveRun(engine string, d time.Duration, err error) {
	m.duration.WithLabelValues(engine).Observe(d.Seconds())
	m.runs.WithLabelValues(engine, core.StateOf(err).String()).Inc()
}

// ObserveOp records a container operation; outcome is "ok" or the error kind.
func (m *Metrics) ObserveOp(container, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = core.ErrorKind(err)
	}
	m.ops.WithLabelValues(container, op, outcome).Inc()
}

// SessionOpened increments the active-sessions gauge.
func (m *Metrics) SessionOpened() { m.sessions.Inc() }

// SessionClosed decrements the active-sessions gauge.
func (m *Metrics) SessionClosed() { m.sessions.Dec() }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
