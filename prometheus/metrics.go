package prometheus

import (
	"catalog-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Admin authentication metrics
	LoginAttemptsCounter prometheus.Counter
	LoginSuccessCounter  prometheus.Counter
	LoginFailureCounter  prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Catalog metrics
	ProductOperationsCounter prometheus.CounterVec
	ProductViewsCounter      prometheus.CounterVec

	// Inquiry metrics
	InquiriesCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Admin authentication metrics
	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	LoginSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_success_total",
			Help: "Total number of successful admin logins",
		},
	)

	LoginFailureCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_admin_login_failures_total",
			Help: "Total number of rejected admin logins",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Catalog metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of admin product operations",
		},
		[]string{"operation"},
	)

	ProductViewsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product detail views",
		},
		[]string{"product_id", "category"},
	)

	// Inquiry metrics
	InquiriesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_inquiries_total",
			Help: "Total number of buyer inquiries submitted",
		},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for admin product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordProductView increments the counter for product detail views
func RecordProductView(productID string, category string) {
	ProductViewsCounter.WithLabelValues(productID, category).Inc()
}
