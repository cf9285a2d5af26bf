// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "truth_analysis"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    prometheus.Counter
	AnalysesFailed   prometheus.Counter
	AnalysisDuration prometheus.Histogram

	// Modality metrics
	ModalityScored *prometheus.CounterVec
	ModalityErrors *prometheus.CounterVec

	// Fusion metrics
	FusionTruthfulness prometheus.Histogram
	FusionConfidence   prometheus.Histogram
	FusionModalities   prometheus.Histogram

	// Input guardrail metrics
	InputLimitExceeded *prometheus.CounterVec

	// Event publish metrics
	PublishTotal   *prometheus.CounterVec
	PublishErrors  *prometheus.CounterVec
	PublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		AnalysesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of analysis sessions started",
		}),
		AnalysesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_failed_total",
			Help:      "Total number of analysis sessions that produced no result",
		}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of full analysis sessions in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),

		ModalityScored: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modality_scored_total",
			Help:      "Total number of successfully scored modalities",
		}, []string{"modality"}),
		ModalityErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modality_errors_total",
			Help:      "Total number of per-modality scoring failures",
		}, []string{"modality", "kind"}),

		FusionTruthfulness: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fusion_truthfulness",
			Help:      "Distribution of fused truthfulness scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		FusionConfidence: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fusion_confidence",
			Help:      "Distribution of fused confidence scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		FusionModalities: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fusion_modalities",
			Help:      "Number of modalities present per fusion",
			Buckets:   []float64{1, 2, 3},
		}),

		InputLimitExceeded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_limit_exceeded_total",
			Help:      "Total number of inputs rejected for exceeding size limits",
		}, []string{"input"}),

		PublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_total",
			Help:      "Total number of result events published",
		}, []string{"topic", "event_type"}),
		PublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Total number of result event publish errors",
		}, []string{"topic", "event_type"}),
		PublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_latency_seconds",
			Help:      "Result event publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordAnalysisStart records a new analysis session starting.
func (m *Metrics) RecordAnalysisStart() {
	m.AnalysesTotal.Inc()
}

// RecordAnalysisEnd records an analysis session finishing.
func (m *Metrics) RecordAnalysisEnd(success bool, durationSeconds float64) {
	m.AnalysisDuration.Observe(durationSeconds)
	if !success {
		m.AnalysesFailed.Inc()
	}
}

// RecordModalityScored records a successfully scored modality.
func (m *Metrics) RecordModalityScored(modality string) {
	m.ModalityScored.WithLabelValues(modality).Inc()
}

// RecordModalityError records a per-modality scoring failure.
func (m *Metrics) RecordModalityError(modality, kind string) {
	m.ModalityErrors.WithLabelValues(modality, kind).Inc()
}

// RecordFusion records the outcome of one fusion.
func (m *Metrics) RecordFusion(truthfulness, confidence, modalities int) {
	m.FusionTruthfulness.Observe(float64(truthfulness))
	m.FusionConfidence.Observe(float64(confidence))
	m.FusionModalities.Observe(float64(modalities))
}

// RecordLimitExceeded records an input rejected for exceeding size limits.
func (m *Metrics) RecordLimitExceeded(input string) {
	m.InputLimitExceeded.WithLabelValues(input).Inc()
}

// RecordPublish records a result event publish attempt.
func (m *Metrics) RecordPublish(topic, eventType string, err error, latencySeconds float64) {
	m.PublishTotal.WithLabelValues(topic, eventType).Inc()
	m.PublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.PublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
