// Package metrics exports reformulation counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reformulator"

// Recorder receives the service events worth counting. A nil *Exporter is a
// valid no-op Recorder.
type Recorder interface {
	ObserveGenerate(kind, model string, d time.Duration, err error)
	IncHistoryFailure()
}

// Exporter holds the collectors on a private registry.
type Exporter struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	historyFailures prometheus.Counter
}

// Config configures the exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry

	// Buckets for latency histograms (in seconds)
	LatencyBuckets []float64
}

func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
	}
}

func NewExporter(cfg Config) *Exporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of generate calls by kind and outcome",
		},
		[]string{"kind", "model", "status"},
	)

	e.latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_latency_seconds",
			Help:      "Latency of generate calls in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"kind", "model"},
	)

	e.historyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_write_failures_total",
			Help:      "History appends that failed after a successful reformulation",
		},
	)

	registry.MustRegister(e.requests, e.latency, e.historyFailures)
	return e
}

func (e *Exporter) ObserveGenerate(kind, model string, d time.Duration, err error) {
	if e == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	e.requests.WithLabelValues(kind, model, status).Inc()
	e.latency.WithLabelValues(kind, model).Observe(d.Seconds())
}

func (e *Exporter) IncHistoryFailure() {
	if e == nil {
		return
	}
	e.historyFailures.Inc()
}

// Handler serves the registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

var _ Recorder = (*Exporter)(nil)
