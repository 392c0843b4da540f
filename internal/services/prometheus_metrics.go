package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	profilesCreatedTotal    prometheus.Counter
	profilesScoredTotal     *prometheus.CounterVec
	mismatchScore           prometheus.Histogram
	feeAnalysesTotal        *prometheus.CounterVec
	healthScore             prometheus.Histogram
	linkedBanks             prometheus.Gauge
	bankLinkEventsTotal     *prometheus.CounterVec
	subscriptionChangeTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		profilesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "intake_profiles_created_total",
				Help: "Total number of intake submissions stored",
			},
		),
		profilesScoredTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profiles_scored_total",
				Help: "Total number of advisory scorecards computed",
			},
			[]string{"risk_label"},
		),
		mismatchScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mismatch_score",
				Help:    "Distribution of computed mismatch scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		feeAnalysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fee_analyses_total",
				Help: "Total number of fee analysis runs by outcome",
			},
			[]string{"status"},
		),
		healthScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "financial_health_score",
				Help:    "Distribution of computed financial health scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		linkedBanks: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "linked_banks",
				Help: "Current number of linked bank connections",
			},
		),
		bankLinkEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_link_events_total",
				Help: "Total number of bank link and unlink events",
			},
			[]string{"operation"},
		),
		subscriptionChangeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscription_changes_total",
				Help: "Total number of plan changes",
			},
			[]string{"plan"},
		),
	}
}

func (m *PrometheusMetrics) RecordProfileCreated() {
	m.profilesCreatedTotal.Inc()
}

func (m *PrometheusMetrics) RecordProfileScored(riskLabel string) {
	m.profilesScoredTotal.WithLabelValues(riskLabel).Inc()
}

func (m *PrometheusMetrics) ObserveMismatchScore(score int) {
	m.mismatchScore.Observe(float64(score))
}

func (m *PrometheusMetrics) RecordFeeAnalysis(status string) {
	m.feeAnalysesTotal.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) ObserveHealthScore(score int) {
	m.healthScore.Observe(float64(score))
}

func (m *PrometheusMetrics) SetLinkedBanks(count int) {
	m.linkedBanks.Set(float64(count))
}

func (m *PrometheusMetrics) RecordBankLink(operation string) {
	m.bankLinkEventsTotal.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordSubscriptionChange(plan string) {
	m.subscriptionChangeTotal.WithLabelValues(plan).Inc()
}

// NoopMetrics discards all observations. Used in tests where the global
// prometheus registry must stay untouched.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordProfileCreated()           {}
func (m *NoopMetrics) RecordProfileScored(string)      {}
func (m *NoopMetrics) ObserveMismatchScore(int)        {}
func (m *NoopMetrics) RecordFeeAnalysis(string)        {}
func (m *NoopMetrics) ObserveHealthScore(int)          {}
func (m *NoopMetrics) SetLinkedBanks(int)              {}
func (m *NoopMetrics) RecordBankLink(string)           {}
func (m *NoopMetrics) RecordSubscriptionChange(string) {}
