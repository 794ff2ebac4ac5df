// Package metrics exposes Prometheus instrumentation for the store and the
// directory service.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"PROFILE_EXPLORER_BACK-END/internal/store"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry  *prometheus.Registry
	storeOps  *prometheus.CounterVec
	storeTook *prometheus.HistogramVec
	inFlight  prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profiles",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and result.",
		}, []string{"op", "result"}),
		storeTook: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "profiles",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation duration including simulated latency.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 1, 2},
		}, []string{"op"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "profiles",
			Subsystem: "directory",
			Name:      "in_flight",
			Help:      "Directory calls waiting on the store.",
		}),
	}
	m.registry.MustRegister(
		m.storeOps,
		m.storeTook,
		m.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOp implements store.Observer.
func (m *Metrics) ObserveOp(op store.Op, took time.Duration, err error) {
	m.storeOps.WithLabelValues(string(op), result(err)).Inc()
	m.storeTook.WithLabelValues(string(op)).Observe(took.Seconds())
}

// InFlightInc and InFlightDec track directory calls.
func (m *Metrics) InFlightInc() { m.inFlight.Inc() }
func (m *Metrics) InFlightDec() { m.inFlight.Dec() }

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
