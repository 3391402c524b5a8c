// Package metrics exposes Prometheus counters for the telemetry pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "vigia_"

// Channel label values for notification counters.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelPush     = "push"
)

// Metrics holds the collectors incremented by the ingestion and alert paths.
type Metrics struct {
	EventsIngested      prometheus.Counter
	FallsDetected       prometheus.Counter
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	IngestLatency       prometheus.Histogram
}

// New builds and registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsIngested: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "events_ingested_total",
				Help: "Total telemetry events accepted and stored",
			},
		),
		FallsDetected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "falls_detected_total",
				Help: "Total events classified as a fall",
			},
		),
		NotificationsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_sent_total",
				Help: "Total fall alerts delivered by channel",
			},
			[]string{"channel"},
		),
		NotificationsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_failed_total",
				Help: "Total fall alert delivery failures by channel",
			},
			[]string{"channel"},
		),
		IngestLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_latency_seconds",
				Help:    "Telemetry ingestion latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	reg.MustRegister(
		m.EventsIngested,
		m.FallsDetected,
		m.NotificationsSent,
		m.NotificationsFailed,
		m.IngestLatency,
	)

	return m
}

// NewDefault registers the collectors on the global default registry used by
// the /metrics endpoint.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
