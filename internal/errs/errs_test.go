package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Validation failed", nil, []FieldError{
		{Field: "name", Error: "is required"},
	})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Len(t, err.Errors, 1)

	code := "CATEGORY_NOT_FOUND"
	err = NewBadRequestError("Category with id 9 not found", &code, nil)
	assert.Equal(t, "CATEGORY_NOT_FOUND", err.Code)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Athlete not found for id 7", nil)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Athlete not found for id 7", err.Error())
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("An Athlete with this National Id already exists: 12345678900", "ATHLETE_ALREADY_EXISTS")

	assert.Equal(t, http.StatusSeeOther, err.Status)
	assert.Equal(t, "ATHLETE_ALREADY_EXISTS", err.Code)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("gone", nil)

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	original := NewNotFoundError("original", nil)
	replaced := original.WithMessage("replaced")

	assert.Equal(t, "replaced", replaced.Message)
	assert.Equal(t, original.Code, replaced.Code)
	assert.Equal(t, original.Status, replaced.Status)
	assert.Equal(t, "original", original.Message)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "SEE_OTHER", MakeUpperCaseWithUnderscores("See Other"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}
