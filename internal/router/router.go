// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlabs/workout-api/internal/handler"
	"github.com/fitlabs/workout-api/internal/middleware"
	"github.com/fitlabs/workout-api/internal/server"
)

// New builds the Echo instance with all middleware and routes registered.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// All errors, including panics recovered by the Recover middleware and
	// driver errors escaping the service layer, flow through the global
	// error handler for consistent JSON responses.
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Middleware order matters: the request id must exist before the
	// context enhancer builds the request-scoped logger, and the New Relic
	// transaction must exist before tracing attributes are attached.
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}

// registerAPIRoutes maps the resource endpoints to their typed handlers.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	categories := e.Group("/categories")
	categories.POST("", handler.Handle(h.Category.Handler, h.Category.Create, http.StatusCreated))
	categories.GET("", handler.Handle(h.Category.Handler, h.Category.List, http.StatusOK))
	categories.GET("/:id", handler.Handle(h.Category.Handler, h.Category.Get, http.StatusOK))

	centers := e.Group("/training-centers")
	centers.POST("", handler.Handle(h.TrainingCenter.Handler, h.TrainingCenter.Create, http.StatusCreated))
	centers.GET("", handler.Handle(h.TrainingCenter.Handler, h.TrainingCenter.List, http.StatusOK))
	centers.GET("/:id", handler.Handle(h.TrainingCenter.Handler, h.TrainingCenter.Get, http.StatusOK))

	athletes := e.Group("/athletes")
	athletes.POST("", handler.Handle(h.Athlete.Handler, h.Athlete.Create, http.StatusCreated))
	athletes.GET("", handler.Handle(h.Athlete.Handler, h.Athlete.List, http.StatusOK))
	athletes.GET("/:id", handler.Handle(h.Athlete.Handler, h.Athlete.Get, http.StatusOK))
	athletes.PATCH("/:id", handler.Handle(h.Athlete.Handler, h.Athlete.Update, http.StatusOK))
	athletes.DELETE("/:id", handler.HandleNoContent(h.Athlete.Handler, h.Athlete.Delete, http.StatusNoContent))
}
