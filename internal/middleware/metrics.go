package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingua_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UpstreamRequests counts proxied upstream calls by service and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingua_upstream_requests_total",
		Help: "Total number of upstream proxy requests by service and outcome",
	}, []string{"service", "outcome"})

	// LikeToggles counts like-edge transitions by direction.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lingua_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})
)

// InitMetrics creates the Prometheus HTTP instrumentation for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware returns the request instrumentation middleware.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
