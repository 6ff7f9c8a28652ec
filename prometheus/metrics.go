package prometheus

import (
	"strconv"
	"time"

	"site-service/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Site operation metrics
	SiteOperationsCounter prometheus.CounterVec

	// Slug availability check results
	SlugChecksCounter prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Owner specific metrics
	SitesPerOwnerGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SiteOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of site operations",
		},
		[]string{"operation"},
	)

	SlugChecksCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_slug_checks_total",
			Help: "Total number of slug availability checks by result",
		},
		[]string{"result"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	SitesPerOwnerGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_sites_per_owner",
			Help: "Number of sites per owner",
		},
		[]string{"owner_id"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordSiteOperation increments the counter for site operations
func RecordSiteOperation(operation string) {
	SiteOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordSlugCheck increments the slug availability check counter
func RecordSlugCheck(available bool) {
	result := "taken"
	if available {
		result = "available"
	}
	SlugChecksCounter.WithLabelValues(result).Inc()
}

// UpdateSitesPerOwner updates the gauge for sites per owner
func UpdateSitesPerOwner(ownerID string, count int64) {
	SitesPerOwnerGauge.WithLabelValues(ownerID).Set(float64(count))
}

// Middleware creates an Echo middleware function that records HTTP request metrics
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// Record metrics after the request is processed
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method
			path := c.Path()

			HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
			HttpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler returns an HTTP handler for exposing Prometheus metrics
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
