package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerCommands       *prometheus.CounterVec
	advisoryCategories   *prometheus.CounterVec
	authenticationEvents *prometheus.CounterVec
	ledgerLoadDuration   prometheus.Histogram
	aggregationDuration  prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerCommands: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_commands_total",
				Help: "Total number of ledger mutation commands by outcome",
			},
			[]string{"command", "status"},
		),
		advisoryCategories: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisory_categories_total",
				Help: "Total number of advisory classifications by category",
			},
			[]string{"category"},
		),
		authenticationEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		ledgerLoadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_load_duration_milliseconds",
				Help:    "Ledger load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_duration_milliseconds",
				Help:    "Dashboard aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_commands_total":
		m.ledgerCommands.WithLabelValues(tags["command"], tags["status"]).Inc()
	case "advisory_categories_total":
		if category := tags["category"]; category != "" {
			m.advisoryCategories.WithLabelValues(category).Inc()
		}
	case "authentication_events_total":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.load":
		m.ledgerLoadDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard.aggregation":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}
