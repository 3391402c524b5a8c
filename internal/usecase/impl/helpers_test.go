package impl

import (
	"io"
	"log/slog"

	"vigia/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMetrics builds a Metrics instance backed by a private registry so
// tests never clash on the default registerer.
func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
