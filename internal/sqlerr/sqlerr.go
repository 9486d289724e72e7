// Package sqlerr translates database driver errors into application errors.
//
// It parses the SQLSTATE codes and metadata reported by the Postgres driver
// and converts them into client-facing errs.HTTPError values: a unique
// violation becomes an "already exists" conflict, a foreign-key violation a
// bad request, and anything unrecognized a sanitized internal error.
package sqlerr

import (
	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies a database error into the constraint categories the
// application cares about.
type Code int

const (
	// Other covers every database error that is not a recognized
	// constraint violation.
	Other Code = iota

	// UniqueViolation is a natural-key collision (SQLSTATE 23505).
	UniqueViolation

	// ForeignKeyViolation is a reference to a missing row (SQLSTATE 23503).
	ForeignKeyViolation

	// NotNullViolation is a missing required column value (SQLSTATE 23502).
	NotNullViolation

	// CheckViolation is a failed CHECK constraint (SQLSTATE 23514).
	CheckViolation
)

// MapCode maps a Postgres SQLSTATE string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE and constraint metadata so callers can build
// precise messages (which column collided, which table was involved) without
// re-parsing driver internals.
type Error struct {
	Code           Code
	DatabaseCode   string // original SQLSTATE
	Message        string // database's primary message
	Detail         string // database's detail line, e.g. "Key (name)=(Scale) already exists."
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error // original driver error, kept for Unwrap
}

// Error satisfies the error interface with the database's own message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw *pgconn.PgError into a normalized *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		Detail:         src.Detail,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
