// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from the handlers, enforces reference integrity (an athlete may only
// point at an existing category and training center), and maps absent rows
// into client-facing errors. Uniqueness is never pre-checked here: the store
// detects collisions at write time and the global error handler translates
// them, so there is no race between check and write.
package service
