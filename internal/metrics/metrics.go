// Package metrics exposes Prometheus instruments for the uploader.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dataset_loader"

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeRetry     = "retry"
	OutcomeUploaded  = "uploaded"
	OutcomeDuplicate = "duplicate"
	OutcomeStaged    = "staged"
	OutcomeFailed    = "failed"
)

// UploaderMetrics groups the loader's instruments. A nil *UploaderMetrics
// is valid and records nothing.
type UploaderMetrics struct {
	Batches       *prometheus.CounterVec
	Items         *prometheus.CounterVec
	UploadLatency prometheus.Histogram
	Pending       prometheus.Gauge
}

// NewUploaderMetrics creates the instruments and registers them with reg.
func NewUploaderMetrics(reg prometheus.Registerer) *UploaderMetrics {
	batches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upload",
		Name:      "batches_total",
		Help:      "Total number of item batch upload attempts.",
	}, []string{"outcome"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upload",
		Name:      "items_total",
		Help:      "Total number of dataset items by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upload",
		Name:      "batch_duration_seconds",
		Help:      "Latency of item batch uploads in seconds.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "staging",
		Name:      "pending_items",
		Help:      "Number of staged items waiting for upload.",
	})

	reg.MustRegister(batches, items, latency, pending)

	return &UploaderMetrics{
		Batches:       batches,
		Items:         items,
		UploadLatency: latency,
		Pending:       pending,
	}
}

// ObserveBatch records one batch upload attempt.
func (m *UploaderMetrics) ObserveBatch(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Batches.WithLabelValues(outcome).Inc()
	m.UploadLatency.Observe(took.Seconds())
}

// AddItems counts n items with the given outcome.
func (m *UploaderMetrics) AddItems(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Items.WithLabelValues(outcome).Add(float64(n))
}

// SetPending sets the pending staged items gauge.
func (m *UploaderMetrics) SetPending(n int) {
	if m == nil {
		return
	}
	m.Pending.Set(float64(n))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
