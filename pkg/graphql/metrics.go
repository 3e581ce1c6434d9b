package graphql

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK             = "ok"
	outcomeGraphQLError   = "graphql_error"
	outcomeTransportError = "transport_error"
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "commerce_admin",
		Subsystem: "graphql",
		Name:      "request_duration_seconds",
		Help:      "Latency of GraphQL operations sent to the commerce API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation", "outcome"},
)

func init() {
	prometheus.MustRegister(requestDuration)
}

func observe(operation, outcome string, d time.Duration) {
	requestDuration.WithLabelValues(operation, outcome).Observe(d.Seconds())
}
