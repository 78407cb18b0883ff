package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Plan outcomes recorded by RecordPlan.
const (
	OutcomePlanned = "planned"
	OutcomeEmpty   = "empty"
	OutcomeFailed  = "failed"
)

var (
	planCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dormdash_route_plans_total",
		Help: "smart route calculations by outcome",
	}, []string{"outcome"})

	planJobs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dormdash_route_plan_jobs",
		Help:    "number of jobs selected per smart route",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dormdash_route_plan_duration_seconds",
		Help:    "wall time spent fetching inputs and planning a smart route",
		Buckets: prometheus.DefBuckets,
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dormdash_http_requests_total",
		Help: "http requests by route pattern, method and status",
	}, []string{"pattern", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dormdash_http_request_duration_seconds",
		Help:    "http request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"pattern"})
)

// RecordPlan records one smart route calculation.
func RecordPlan(outcome string, jobs int, seconds float64) {
	planCounter.WithLabelValues(outcome).Inc()
	planDuration.Observe(seconds)
	if outcome != OutcomeFailed {
		planJobs.Observe(float64(jobs))
	}
}

// RecordHTTP records one served request.
func RecordHTTP(pattern, method, status string, seconds float64) {
	httpRequests.WithLabelValues(pattern, method, status).Inc()
	httpDuration.WithLabelValues(pattern).Observe(seconds)
}
