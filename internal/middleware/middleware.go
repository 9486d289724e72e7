// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: request
// correlation ids, request-scoped logging, CORS, panic recovery, security
// headers, tracing, and the global error handler that funnels every failure
// into a consistent JSON response.
package middleware
