package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mutation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeBusy     = "busy"
	OutcomeFailed   = "failed"
)

var mutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "commerce_admin",
		Subsystem: "menus",
		Name:      "mutations_total",
		Help:      "Menu mutations by kind and outcome. Rejected means the API returned field errors.",
	},
	[]string{"kind", "outcome"},
)

func ObserveMutation(kind, outcome string) {
	mutations.WithLabelValues(kind, outcome).Inc()
}
