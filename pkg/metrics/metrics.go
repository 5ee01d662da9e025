// Package metrics exposes Prometheus instrumentation for the pipeline: event
// counters owned by the runtime and scrape-time gauges read from the store.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reporadar"

// Metrics holds the process-owned collectors. All observation methods are
// nil-safe so instrumentation stays optional for callers and tests.
type Metrics struct {
	registry *prometheus.Registry

	cyclesTotal     *prometheus.CounterVec
	cycleDuration   *prometheus.HistogramVec
	scansTotal      *prometheus.CounterVec
	discoveredTotal prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	batchesStarted  prometheus.Counter
	batchRecoveries prometheus.Counter
}

// New creates a Metrics with a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cyclesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "cycles_total",
				Help:      "Number of scheduler cycles run. Labeled by cycle type.",
			},
			[]string{"type"},
		),
		cycleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "cycle_duration_seconds",
				Help:      "Duration of scheduler cycles in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"type"},
		),
		scansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scanner",
				Name:      "scans_total",
				Help:      "Number of repository scans performed. Labeled by depth.",
			},
			[]string{"depth"},
		),
		discoveredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "discovery",
				Name:      "repositories_total",
				Help:      "Number of newly discovered repositories.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Number of API requests served. Labeled by route and status code.",
			},
			[]string{"route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "API request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		batchesStarted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "runs_started_total",
				Help:      "Number of analysis batches started.",
			},
		),
		batchRecoveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "recoveries_total",
				Help:      "Number of batch self-healing recovery attempts.",
			},
		),
	}

	m.registry.MustRegister(
		m.cyclesTotal,
		m.cycleDuration,
		m.scansTotal,
		m.discoveredTotal,
		m.httpRequests,
		m.httpDuration,
		m.batchesStarted,
		m.batchRecoveries,
	)
	return m
}

// Register adds an extra collector, such as the store collector, to the
// scrape registry.
func (m *Metrics) Register(c prometheus.Collector) error {
	return m.registry.Register(c)
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCycle records one completed scheduler cycle.
func (m *Metrics) ObserveCycle(cycleType string, duration time.Duration, discovered int) {
	if m == nil {
		return
	}
	m.cyclesTotal.WithLabelValues(cycleType).Inc()
	m.cycleDuration.WithLabelValues(cycleType).Observe(duration.Seconds())
	m.discoveredTotal.Add(float64(discovered))
}

// ObserveScan records one repository scan.
func (m *Metrics) ObserveScan(deep bool) {
	if m == nil {
		return
	}
	depth := "basic"
	if deep {
		depth = "deep"
	}
	m.scansTotal.WithLabelValues(depth).Inc()
}

// ObserveRequest records one served API request.
func (m *Metrics) ObserveRequest(route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, httpStatusLabel(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveBatchStart records one started batch.
func (m *Metrics) ObserveBatchStart() {
	if m == nil {
		return
	}
	m.batchesStarted.Inc()
}

// ObserveBatchRecovery records one self-healing recovery attempt.
func (m *Metrics) ObserveBatchRecovery() {
	if m == nil {
		return
	}
	m.batchRecoveries.Inc()
}

func httpStatusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
