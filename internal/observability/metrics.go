package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// ActiveConnections tracks in-flight requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clinic_active_connections",
			Help: "Number of requests being served",
		},
	)

	// DatabaseOperations tracks store operations per collection
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"collection", "operation", "status"},
	)

	// LoginAttempts tracks logins by result
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_login_attempts_total",
			Help: "Number of login attempts",
		},
		[]string{"result"}, // "success", "invalid_credentials", "error"
	)

	// PaymentsRecorded tracks payments by the resulting status
	PaymentsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_payments_recorded_total",
			Help: "Number of payments recorded",
		},
		[]string{"status"},
	)

	// CascadeDeletes counts dependent appointments removed with their parent
	CascadeDeletes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_cascade_deleted_appointments_total",
			Help: "Number of appointments deleted because their patient or procedure was deleted",
		},
		[]string{"parent"},
	)
)

// StatusLabel turns an error into a metric label.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
