// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags
// (required fields, length limits, positivity) and extracts validation
// failures into the field-level error format clients receive. Structural
// validation happens here, before any repository call.
package validation
