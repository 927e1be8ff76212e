// Package metrics provides Prometheus metrics for the careerpath tool.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for export outcomes.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Manager manages all Prometheus metrics for careerpath.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Scoring
	analyses      prometheus.Counter
	dominantCodes *prometheus.CounterVec
	hollandCodes  *prometheus.CounterVec
	topScore      prometheus.Histogram

	// Export
	exports       *prometheus.CounterVec
	exportLatency prometheus.Histogram
	exportBytes   prometheus.Gauge

	// Wizard
	transitions *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "careerpath",
		histogramBuckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		enabled:          true,
		constLabels:      map[string]string{},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analyses = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "scoring",
		Name:        "analyses_total",
		Help:        "Total number of Big Five vectors scored",
		ConstLabels: m.constLabels,
	})

	m.dominantCodes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "scoring",
		Name:        "dominant_code_total",
		Help:        "How often each RIASEC code lands in the dominant three",
		ConstLabels: m.constLabels,
	}, []string{"code"})

	m.hollandCodes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "scoring",
		Name:        "holland_code_total",
		Help:        "Total analyses per resulting Holland Code",
		ConstLabels: m.constLabels,
	}, []string{"holland_code"})

	m.topScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "scoring",
		Name:        "top_score",
		Help:        "Distribution of the highest rounded RIASEC score per analysis",
		Buckets:     prometheus.LinearBuckets(0, 20, 8),
		ConstLabels: m.constLabels,
	})

	m.exports = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "export",
		Name:        "documents_total",
		Help:        "Total export attempts by result",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.exportLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "export",
		Name:        "latency_milliseconds",
		Help:        "Histogram of document render and write latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.exportBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "export",
		Name:        "bytes",
		Help:        "Size of the last exported document in bytes",
		ConstLabels: m.constLabels,
	})

	m.transitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "wizard",
		Name:        "transitions_total",
		Help:        "Total wizard transitions by target screen",
		ConstLabels: m.constLabels,
	}, []string{"to"})
}

// RecordAnalysis records one scored profile.
func (m *Manager) RecordAnalysis(hollandCode string, dominant []string, topScore int) {
	if !m.enabled {
		return
	}
	m.analyses.Inc()
	m.hollandCodes.WithLabelValues(hollandCode).Inc()
	for _, c := range dominant {
		m.dominantCodes.WithLabelValues(c).Inc()
	}
	m.topScore.Observe(float64(topScore))
}

// RecordExport records an export attempt, its latency and, on success, its size.
func (m *Manager) RecordExport(result string, latencyMs float64, size int) {
	if !m.enabled {
		return
	}
	m.exports.WithLabelValues(result).Inc()
	m.exportLatency.Observe(latencyMs)
	if result == ResultSuccess {
		m.exportBytes.Set(float64(size))
	}
}

// RecordTransition records a wizard move to the named screen.
func (m *Manager) RecordTransition(to string) {
	if !m.enabled {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

// Registry returns the registry the manager's collectors live in.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry in Prometheus text format to path,
// atomically, for a node-exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager {
	return globalManager
}
