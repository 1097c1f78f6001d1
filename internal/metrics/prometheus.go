package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnknownLabel replaces label values that did not come from the loaded data
const UnknownLabel = "unknown"

// Recorder owns its registry so several can coexist in tests
type Recorder struct {
	registry      *prometheus.Registry
	renders       *prometheus.CounterVec
	skippedCharts *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	loadedRecords *prometheus.GaugeVec
}

func New() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_renders_total",
				Help: "Total number of dashboard renders",
			},
			[]string{"symbol", "frequency"},
		),
		skippedCharts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_skipped_charts_total",
				Help: "Charts left out of a render because of an error",
			},
			[]string{"chart"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockdash_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		loadedRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockdash_loaded_records",
				Help: "Records loaded per symbol at startup",
			},
			[]string{"symbol"},
		),
	}
}

func (r *Recorder) RecordRender(symbol, frequency string) {
	r.renders.WithLabelValues(symbol, frequency).Inc()
}

func (r *Recorder) RecordSkippedChart(chart string) {
	r.skippedCharts.WithLabelValues(chart).Inc()
}

func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordLoadedRecords(symbol string, n int) {
	r.loadedRecords.WithLabelValues(symbol).Set(float64(n))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
