package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordering_http_requests_total",
		Help: "Number of HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ordering_http_request_duration_seconds",
		Help:    "HTTP request latency, partitioned by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Metrics returns middleware that records request counts and latency.
// The route template is used as the path label so identifiers do not blow up
// cardinality.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}

			requestsTotal.WithLabelValues(
				ctx.Request().Method,
				path,
				strconv.Itoa(ctx.Response().Status),
			).Inc()
			requestDuration.WithLabelValues(ctx.Request().Method, path).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// MetricsHandler exposes the Prometheus scrape endpoint as an echo handler.
func MetricsHandler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
