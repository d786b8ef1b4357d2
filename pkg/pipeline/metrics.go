package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the analysis pipeline.
type Metrics struct {
	AnalysesTotal      *prometheus.CounterVec
	StageSeconds       *prometheus.HistogramVec
	UtterancesTotal    prometheus.Counter
	ActionItemsTotal   prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
}

// DefaultMetrics creates metrics on the default registerer.
func DefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

// NewMetrics creates a new set of pipeline metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetmind_analyses_total",
				Help: "Total meeting analyses by outcome",
			},
			[]string{"status"},
		),
		StageSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meetmind_stage_seconds",
				Help:    "Latency per pipeline stage",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"stage"},
		),
		UtterancesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "meetmind_utterances_parsed_total",
				Help: "Total utterances parsed from transcripts",
			},
		),
		ActionItemsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "meetmind_action_items_total",
				Help: "Total action items detected",
			},
		),
		NotificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetmind_notifications_total",
				Help: "Total sentiment notification decisions by kind",
			},
			[]string{"kind"},
		),
	}
}
