package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	priceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arenawatch",
		Subsystem: "price_oracle",
		Name:      "operations_total",
		Help:      "Count of price provider operations.",
	}, []string{"operation", "status"})
	priceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arenawatch",
		Subsystem: "price_oracle",
		Name:      "operation_duration_seconds",
		Help:      "Duration of price provider operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// PriceOracle tracks metrics for price provider calls.
type PriceOracle struct{}

// NewPriceOracle constructs a metrics collector for price lookups.
func NewPriceOracle() *PriceOracle {
	return &PriceOracle{}
}

// Observe records a single price lookup outcome and duration.
func (m PriceOracle) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	priceRequestsTotal.WithLabelValues(operation, status).Inc()
	priceRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
