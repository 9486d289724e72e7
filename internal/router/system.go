package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitlabs/workout-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the resource
// API: health status, the docs UI, and the static assets it reads.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)

	// Serve ./static at /static/* for openapi.json and docs assets.
	e.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
