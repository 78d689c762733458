// Package metrics defines the service's Prometheus metrics and the gin
// middleware that records them. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_backend"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - path: registered route pattern (e.g. "/api/users/:id")
//   - status: numeric response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of handled HTTP requests.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request handling latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// Middleware returns a gin middleware recording a counter and a latency
// histogram for every handled request. Unmatched routes are recorded under
// the raw URL-free label "unmatched" to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
