package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what the serve surface does. A nil *Metrics is a no-op,
// which keeps handlers testable without a registry.
type Metrics struct {
	predictions  *prometheus.CounterVec
	syncOutcomes *prometheus.CounterVec
	duration     prometheus.Histogram
	historySize  prometheus.Gauge
}

// NewMetrics registers the serve metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_predictions_total",
			Help: "Prediction reports served, by draw kind.",
		}, []string{"kind"}),
		syncOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_sync_results_total",
			Help: "Synchronization attempts against the results API, by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lotto_prediction_duration_seconds",
			Help:    "Wall time of one full prediction cycle.",
			Buckets: prometheus.DefBuckets,
		}),
		historySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lotto_history_records",
			Help: "Records currently held in the history store.",
		}),
	}
}

func (m *Metrics) ObservePrediction(kind string, seconds float64) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(kind).Inc()
	m.duration.Observe(seconds)
}

func (m *Metrics) ObserveSync(outcome string) {
	if m == nil {
		return
	}
	m.syncOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.historySize.Set(float64(n))
}
