// Package handler is the HTTP layer, the first entry point for business
// logic after the router.
//
// It binds and validates request payloads using the validation package,
// calls the appropriate service, and shapes domain results into response
// DTOs. The generic pipeline in base.go centralizes binding, validation,
// logging, tracing, and response writing so each endpoint is a typed
// function from request to response.
package handler
