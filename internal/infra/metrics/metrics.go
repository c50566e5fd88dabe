// Package metrics exposes Prometheus collectors for the portal.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const (
	namespace = "portal"

	LabelSent         = "sent"
	LabelRetried      = "retried"
	LabelDeadLettered = "dead_lettered"
	LabelRejected     = "rejected"
)

// ReceiptMetrics counts receipt deliveries.
type ReceiptMetrics struct {
	Published *prometheus.CounterVec
	Outcomes  *prometheus.CounterVec
	Duration  prometheus.Histogram
}

func NewReceiptMetrics() *ReceiptMetrics {
	const subsystem = "receipts"

	return &ReceiptMetrics{
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "published_total",
			Help:      "Count of receipt events handed to the dispatcher",
		}, []string{"provider"}),

		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deliveries_total",
			Help:      "Count of receipt delivery attempts by outcome",
		}, []string{"result"}),

		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "send_duration_seconds",
			Help:      "Histogram of times spent rendering and sending one receipt email",
			Buckets:   prometheus.ExponentialBuckets(1e-2, 2, 10),
		}),
	}
}

// PrometheusCollectors lists the collectors to register.
func (m *ReceiptMetrics) PrometheusCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Published,
		m.Outcomes,
		m.Duration,
	}
}

func (m *ReceiptMetrics) ObservePublished(provider string) {
	m.Published.WithLabelValues(provider).Inc()
}

func (m *ReceiptMetrics) ObserveOutcome(result string) {
	m.Outcomes.WithLabelValues(result).Inc()
}

func (m *ReceiptMetrics) ObserveSend(started time.Time) {
	m.Duration.Observe(time.Since(started).Seconds())
}

// NewRegistry creates the registry served on /metrics, with the Go and process collectors.
func NewRegistry(receipts *ReceiptMetrics) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(receipts.PrometheusCollectors()...)

	return reg
}

// Module provides the receipt metrics and the registry as Gatherer.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewReceiptMetrics,
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
	),
)
