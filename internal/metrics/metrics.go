package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_login_failures_total",
			Help: "Total number of rejected login attempts",
		},
	)

	// Checkout metrics
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_checkouts_total",
			Help: "Total number of checkouts by outcome",
		},
		[]string{"outcome"},
	)
)

// RequestMetrics records count and latency for every request once the
// handler chain finishes. The route template is used instead of the raw
// URL so IDs do not explode the label cardinality.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
