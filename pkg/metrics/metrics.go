package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blogapi_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blogapi_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blogapi_store_operations_total",
			Help: "Total number of entity store operations",
		},
		[]string{"operation", "entity"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blogapi_store_operation_duration_seconds",
			Help:    "Entity store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "entity"},
	)

	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blogapi_users_total",
			Help: "Number of users currently in the store",
		},
	)

	PostsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blogapi_posts_total",
			Help: "Number of posts currently in the store",
		},
	)
)

func RecordHttpRequest(method, endpoint, status string, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordStoreOperation(operation, entity string, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, entity).Inc()
	StoreOperationDuration.WithLabelValues(operation, entity).Observe(duration.Seconds())
}

func SetUserCount(count int) {
	UsersTotal.Set(float64(count))
}

func SetPostCount(count int) {
	PostsTotal.Set(float64(count))
}
