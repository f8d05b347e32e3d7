package http

import (
	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/infrastructure/http/handlers"
)

// RegisterProbes mounts the liveness and readiness probes. They bypass
// identity resolution and rate limiting.
func RegisterProbes(e *echo.Echo, checks map[string]handlers.Check) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
}
