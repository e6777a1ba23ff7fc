// Package metrics holds the Prometheus collectors of the plan server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlanRequests counts plan requests by endpoint and HTTP status.
	PlanRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rehab_plan_requests_total",
			Help: "Number of plan requests handled.",
		},
		[]string{"endpoint", "status"},
	)

	// PlanDuration observes how long a plan computation takes.
	PlanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rehab_plan_compute_duration_seconds",
			Help:    "Time spent loading a case file and computing its plans.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// PlansComputed counts computed plans by allocation variant.
	PlansComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rehab_plan_plans_computed_total",
			Help: "Number of case plans computed.",
		},
		[]string{"variant"},
	)

	// PlanWarnings counts case warnings reported with computed plans.
	PlanWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rehab_plan_warnings_total",
			Help: "Number of case warnings reported.",
		},
	)
)
