package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fitlabs/workout-api/internal/server"
)

// TracingMiddleware owns the New Relic related echo middleware.
//
// Two layers:
//  1. NewRelicMiddleware installs transaction handling into echo, making
//     newrelic.FromContext work downstream.
//  2. EnhanceTracing adds custom attributes on top of what nrecho records.
//
// When nrApp is nil (integration disabled) both layers are no-ops.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic echo middleware, or a pass-through
// when the integration is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing attaches request correlation attributes to the current
// transaction: request id and client ip. Status codes and routes are already
// recorded by the nrecho middleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				if requestID := GetRequestID(c); requestID != "" {
					txn.AddAttribute("request.id", requestID)
				}
				txn.AddAttribute("http.real_ip", c.RealIP())
			}

			return next(c)
		}
	}
}
