// Package observability defines the Prometheus metrics recorded by the
// report pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "litterlens"

// Metrics holds the counters, histograms, and gauges for report processing.
type Metrics struct {
	// Reports by final outcome: persisted, unsaved, failed, rejected.
	Reports *prometheus.CounterVec
	// In-flight submissions between receipt and response.
	ReportsInFlight prometheus.Gauge

	InferenceRequests *prometheus.CounterVec   // labels: stage={score,category}, outcome={success,service_error,parse_error}
	InferenceDuration *prometheus.HistogramVec // labels: stage

	ArchiveUploads *prometheus.CounterVec // labels: outcome={success,error}
	ArchiveEnabled prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Reports,
		m.ReportsInFlight,
		m.InferenceRequests,
		m.InferenceDuration,
		m.ArchiveUploads,
		m.ArchiveEnabled,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they need without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Report submissions by final outcome.",
		}, []string{"outcome"}),
		ReportsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reports_in_flight",
			Help:      "Report submissions currently being processed.",
		}),
		InferenceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inference_requests_total",
			Help:      "Classification calls by stage and outcome.",
		}, []string{"stage", "outcome"}),
		InferenceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Classification call duration in seconds.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		}, []string{"stage"}),
		ArchiveUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_uploads_total",
			Help:      "Report image archive uploads by outcome.",
		}, []string{"outcome"}),
		ArchiveEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "archive_enabled",
			Help:      "1 when report images are archived to blob storage, 0 otherwise.",
		}),
	}
}
