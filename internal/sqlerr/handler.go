package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fitlabs/workout-api/internal/errs"
)

// ErrCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error its Code is returned, otherwise
// Other. Useful when an error has already been normalized and a caller only
// wants to branch on its category.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// generateErrorCode creates consistent application error codes from DB errors.
//
// Output format is <DOMAIN>_<ACTION>, where DOMAIN comes from the table name
// (uppercased, trailing plural 'S' stripped) and ACTION from the violation
// type. Example: athletes + UniqueViolation => ATHLETE_ALREADY_EXISTS.
//
// These codes are meant for machines (frontend branching), not humans.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singularize(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// getEntityName infers a human entity name from table/column metadata.
//
// Priority:
//  1. a column ending in "_id" names the referenced entity ("category_id" -> "Category")
//  2. the table name, singularized
//  3. "record"
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singularize(tableName))
	}

	return "record"
}

// singularize strips the plural suffix from a table name. It only knows the
// two English plural forms the schemas here use: "categories" -> "category",
// "athletes" -> "athlete".
func singularize(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example: "training_center" -> "Training Center".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueKeyDetailRegex matches Postgres's detail line for unique violations:
//
//	Key (national_id)=(12345678900) already exists.
var uniqueKeyDetailRegex = regexp.MustCompile(`Key \(([^)]+)\)=\(([^)]*)\) already exists`)

// constraintColumn derives the column behind a default Postgres constraint
// name by cutting the table prefix and the constraint-kind suffix:
//
//	training_centers, training_centers_name_key -> "name"
//	athletes, athletes_category_id_fkey         -> "category_id"
//
// The table prefix has to come from TableName; guessing the split inside the
// constraint name alone is ambiguous for multi-word tables. Nondefault
// constraint names yield "".
func constraintColumn(tableName, constraintName string) string {
	if tableName == "" || constraintName == "" {
		return ""
	}

	name := constraintName
	ok := false
	for _, suffix := range []string{"_fkey", "_ukey", "_key"} {
		if name, ok = strings.CutSuffix(constraintName, suffix); ok {
			break
		}
	}
	if !ok {
		return ""
	}

	column, ok := strings.CutPrefix(name, tableName+"_")
	if !ok {
		return ""
	}
	return column
}

// extractUniqueViolation infers the colliding column and value from a unique
// violation's metadata.
//
// The detail line is the most reliable source (it carries both column and
// value); the constraint name is the fallback when detail is absent.
func extractUniqueViolation(sqlErr *Error) (column, value string) {
	if matches := uniqueKeyDetailRegex.FindStringSubmatch(sqlErr.Detail); len(matches) == 3 {
		return matches[1], matches[2]
	}

	return constraintColumn(sqlErr.TableName, sqlErr.ConstraintName), ""
}

// uniqueConflictMessage phrases the "already exists" message for clients,
// naming the colliding field and, when known, the value.
//
// Examples:
//
//	"An Athlete with this National Id already exists: 12345678900"
//	"A Category with this Name already exists: Scale"
func uniqueConflictMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, "")
	column, value := extractUniqueViolation(sqlErr)

	field := "identifier"
	if column != "" {
		field = humanizeText(column)
	}

	article := "A"
	switch entityName[0] {
	case 'A', 'E', 'I', 'O', 'U':
		article = "An"
	}

	msg := fmt.Sprintf("%s %s with this %s already exists", article, entityName, field)
	if value != "" {
		msg = fmt.Sprintf("%s: %s", msg, value)
	}
	return msg
}

// HandleError converts a low-level database error into an application error.
//
// Mapping:
//   - already an *errs.HTTPError: returned unchanged (no double wrapping)
//   - unique violation: 303 conflict naming the colliding field and value
//   - foreign-key violation: 400 naming the missing referenced entity
//   - not-null violation: 400 with a field-level error
//   - check violation: 400
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - anything else: sanitized 500
//
// It is called from the global error handler, after repositories have rolled
// back and propagated the raw driver error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)

		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewConflictError(uniqueConflictMessage(sqlErr), errorCode)

		case ForeignKeyViolation:
			// Postgres leaves ColumnName empty on FK violations; the
			// constraint name carries the referencing column instead.
			columnName := sqlErr.ColumnName
			if columnName == "" {
				columnName = constraintColumn(sqlErr.TableName, sqlErr.ConstraintName)
			}
			entityName := getEntityName(sqlErr.TableName, columnName)
			if referenced := strings.TrimSuffix(strings.ToLower(columnName), "_id"); referenced != "" && referenced != strings.ToLower(columnName) {
				errorCode = generateErrorCode(referenced, ForeignKeyViolation)
			}
			message := fmt.Sprintf("The referenced %s does not exist", entityName)
			return errs.NewBadRequestError(message, &errorCode, nil)

		case NotNullViolation:
			fieldName := humanizeText(sqlErr.ColumnName)
			if fieldName == "" {
				fieldName = "field"
			}
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			message := fmt.Sprintf("The %s is required", fieldName)
			return errs.NewBadRequestError(message, &errorCode, fieldErrors)

		case CheckViolation:
			fieldName := humanizeText(sqlErr.ColumnName)
			if fieldName != "" {
				message := fmt.Sprintf("The %s value does not meet required conditions", fieldName)
				return errs.NewBadRequestError(message, &errorCode, nil)
			}
			return errs.NewBadRequestError("One or more values do not meet required conditions", &errorCode, nil)

		default:
			// Unknown database errors must not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", nil)
	}

	return errs.NewInternalServerError()
}
