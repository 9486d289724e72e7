package sqlerr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlabs/workout-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "athletes",
		ConstraintName: "athletes_national_id_key",
		Detail:         `Key (national_id)=(12345678900) already exists.`,
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusSeeOther, httpErr.Status)
	assert.Equal(t, "ATHLETE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "An Athlete with this National Id already exists: 12345678900", httpErr.Message)
}

func TestHandleErrorUniqueViolationWithoutDetail(t *testing.T) {
	// Some drivers omit the detail line; fall back to the constraint name
	// for the column and skip the value.
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "categories",
		ConstraintName: "categories_name_key",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusSeeOther, httpErr.Status)
	assert.Equal(t, "CATEGORY_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Category with this Name already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:      "23503",
		TableName: "athletes",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ATHLETE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Athlete does not exist", httpErr.Message)
}

func TestHandleErrorForeignKeyViolationNamesReferencedEntity(t *testing.T) {
	// FK violations carry the referencing column only in the constraint
	// name; the error must name the missing referenced entity, not the
	// child table.
	err := HandleError(&pgconn.PgError{
		Code:           "23503",
		TableName:      "athletes",
		ConstraintName: "athletes_category_id_fkey",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CATEGORY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Category does not exist", httpErr.Message)

	err = HandleError(&pgconn.PgError{
		Code:           "23503",
		TableName:      "athletes",
		ConstraintName: "athletes_training_center_id_fkey",
	})

	httpErr = asHTTPError(t, err)
	assert.Equal(t, "TRAINING_CENTER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Training Center does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "athletes",
		ColumnName: "national_id",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ATHLETE_REQUIRED", httpErr.Code)
	assert.Equal(t, "The National Id is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "national_id", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23514",
		TableName:  "athletes",
		ColumnName: "weight",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ATHLETE_INVALID", httpErr.Code)
	assert.Equal(t, "The Weight value does not meet required conditions", httpErr.Message)
}

func TestHandleErrorUnknownDatabaseError(t *testing.T) {
	// Syntax errors and other unexpected SQLSTATEs must never leak details.
	err := HandleError(&pgconn.PgError{
		Code:    "42601",
		Message: "syntax error at or near \"selec\"",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "selec")
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Athlete not found for id 42", nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknownError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "connection refused")
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"athletes", UniqueViolation, "ATHLETE_ALREADY_EXISTS"},
		{"categories", UniqueViolation, "CATEGORY_ALREADY_EXISTS"},
		{"training_centers", ForeignKeyViolation, "TRAINING_CENTER_NOT_FOUND"},
		{"athletes", NotNullViolation, "ATHLETE_REQUIRED"},
		{"athletes", CheckViolation, "ATHLETE_INVALID"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateErrorCode(tt.table, tt.code))
	}
}

func TestGetEntityName(t *testing.T) {
	assert.Equal(t, "Category", getEntityName("athletes", "category_id"))
	assert.Equal(t, "Training Center", getEntityName("athletes", "training_center_id"))
	assert.Equal(t, "Athlete", getEntityName("athletes", ""))
	assert.Equal(t, "record", getEntityName("", ""))
}

func TestExtractUniqueViolation(t *testing.T) {
	column, value := extractUniqueViolation(&Error{
		Detail: `Key (national_id)=(12345678900) already exists.`,
	})
	assert.Equal(t, "national_id", column)
	assert.Equal(t, "12345678900", value)

	column, value = extractUniqueViolation(&Error{
		TableName:      "training_centers",
		ConstraintName: "training_centers_name_key",
	})
	assert.Equal(t, "name", column)
	assert.Empty(t, value)

	column, value = extractUniqueViolation(&Error{})
	assert.Empty(t, column)
	assert.Empty(t, value)
}

func TestConstraintColumn(t *testing.T) {
	assert.Equal(t, "name", constraintColumn("categories", "categories_name_key"))
	assert.Equal(t, "name", constraintColumn("training_centers", "training_centers_name_key"))
	assert.Equal(t, "national_id", constraintColumn("athletes", "athletes_national_id_key"))
	assert.Equal(t, "category_id", constraintColumn("athletes", "athletes_category_id_fkey"))
	assert.Empty(t, constraintColumn("athletes", "custom_unique_athletes"))
	assert.Empty(t, constraintColumn("", "athletes_national_id_key"))
	assert.Empty(t, constraintColumn("athletes", ""))
}
