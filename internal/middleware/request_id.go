package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation id.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the internal key used to store the id in echo context.
	RequestIDKey = "request_id"
)

// RequestID returns an echo middleware that ensures each request has a
// correlation id: an incoming X-Request-ID header is reused, otherwise a new
// UUID is generated. The id is stored in the echo context and echoed back on
// the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request id from echo context, or "" if the
// RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
