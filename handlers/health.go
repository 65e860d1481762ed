package handlers

import (
	"context"
	"net/http"
	"time"

	"nebula_web/services"

	"github.com/heptiolabs/healthcheck"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// readinessTimeout bounds the backend ping behind /readyz
const readinessTimeout = 3 * time.Second

// NewHealthHandler builds liveness and readiness checks. Readiness requires
// the backend to answer; check results are exported as prometheus gauges.
func NewHealthHandler(backend services.BackendAPI, reg prometheus.Registerer) healthcheck.Handler {
	health := healthcheck.NewMetricsHandler(reg, "nebula")
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(10000))
	health.AddReadinessCheck("backend", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), readinessTimeout)
		defer cancel()
		return backend.Ping(ctx)
	})
	return health
}

// RegisterHealthRoutes mounts /healthz and /readyz on e
func RegisterHealthRoutes(e *echo.Echo, health healthcheck.Handler) {
	e.GET("/healthz", echo.WrapHandler(http.HandlerFunc(health.LiveEndpoint)))
	e.GET("/readyz", echo.WrapHandler(http.HandlerFunc(health.ReadyEndpoint)))
}
