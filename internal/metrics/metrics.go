package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and performance
var (
	StatusEventsRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "status_events_recorded_total",
			Help: "Total number of status events recorded",
		},
	)

	StatusEventsDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "status_events_deleted_total",
			Help: "Total number of status events deleted",
		},
	)

	ProjectionRecomputesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projection_recomputes_total",
			Help: "Total number of latest status recomputes",
		},
	)

	ProjectionViolationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projection_violations_total",
			Help: "Total number of projection mismatches found by the audit",
		},
	)

	ProjectionAuditDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "projection_audit_duration_seconds",
			Help:    "Duration of a full projection audit sweep",
			Buckets: prometheus.DefBuckets,
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)
)

// Register registers all metrics with the default Prometheus registry.
// Call once at startup.
func Register() {
	prometheus.MustRegister(StatusEventsRecordedTotal)
	prometheus.MustRegister(StatusEventsDeletedTotal)
	prometheus.MustRegister(ProjectionRecomputesTotal)
	prometheus.MustRegister(ProjectionViolationsTotal)
	prometheus.MustRegister(ProjectionAuditDuration)
	prometheus.MustRegister(HTTPRequestsTotal)
}
