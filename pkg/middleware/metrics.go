package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	riskCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_calculations_total",
			Help: "Total number of device risk calculations by resulting level",
		},
		[]string{"risk_level"},
	)
)

// Metrics middleware records Prometheus metrics
func Metrics(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		method := c.Request.Method

		if endpoint == "" {
			endpoint = "not_found"
		}

		httpRequestsTotal.WithLabelValues(serviceName, method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(serviceName, method, endpoint, status).Observe(duration)
	}
}

// RecordRiskCalculation counts a completed risk calculation
func RecordRiskCalculation(riskLevel string) {
	riskCalculationsTotal.WithLabelValues(riskLevel).Inc()
}
