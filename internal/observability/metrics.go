// Package observability provides Prometheus collectors for the gateway.
// The metrics endpoint is off by default; collectors are cheap to update
// either way.
package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"unichat/internal/core"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unichat",
		Name:      "http_requests_total",
		Help:      "Inbound HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	chatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unichat",
		Name:      "chat_requests_total",
		Help:      "Chat dispatches by provider and outcome.",
	}, []string{"provider", "outcome"})

	chatDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unichat",
		Name:      "chat_duration_seconds",
		Help:      "End-to-end chat dispatch latency by provider.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})
)

// Middleware counts inbound requests by route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			httpRequests.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).Inc()
			return err
		}
	}
}

// ObserveChat records one chat dispatch.
func ObserveChat(provider core.Provider, success bool, elapsed time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	chatRequests.WithLabelValues(string(provider), outcome).Inc()
	chatDuration.WithLabelValues(string(provider)).Observe(elapsed.Seconds())
}
