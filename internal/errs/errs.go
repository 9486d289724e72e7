// Package errs defines the error types returned to API clients.
//
// Every failure path in the application eventually produces an *HTTPError:
// a JSON-serializable shape carrying a machine-readable code, a human-readable
// message, the HTTP status, and optional field-level validation errors. The
// global error handler in the middleware package is the single funnel where
// these are written to the response.
package errs
