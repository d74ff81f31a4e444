package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arenawatch",
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of explorer API operations.",
	}, []string{"operation", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arenawatch",
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ExplorerClient tracks metrics for explorer API calls.
type ExplorerClient struct{}

// NewExplorerClient constructs a metrics collector for explorer calls.
func NewExplorerClient() *ExplorerClient {
	return &ExplorerClient{}
}

// Observe records a single explorer call outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	explorerRequestsTotal.WithLabelValues(operation, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
