package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlabs/workout-api/internal/errs"
)

var testValidator = NewValidator()

type createRequest struct {
	Name       string  `json:"name" validate:"required,max=50"`
	NationalID string  `json:"national_id" validate:"required,len=11"`
	Weight     float64 `json:"weight" validate:"required,gt=0"`
	Sex        string  `json:"sex" validate:"required,oneof=M F"`
}

func (r *createRequest) Validate() error {
	return testValidator.Struct(r)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newJSONContext(t, `{"name":"Joana","national_id":"12345678900","weight":64.5,"sex":"F"}`)

	payload := &createRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "Joana", payload.Name)
	assert.Equal(t, "12345678900", payload.NationalID)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name": `)

	err := BindAndValidate(c, &createRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Malformed request payload", httpErr.Message)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newJSONContext(t, `{"national_id":"123","weight":-2,"sex":"X"}`)

	err := BindAndValidate(c, &createRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}

	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "must be exactly 11 characters", byField["national_id"])
	assert.Equal(t, "must be greater than 0", byField["weight"])
	assert.Equal(t, "must be one of: M F", byField["sex"])
}

func TestExtractValidationErrorCustomErrors(t *testing.T) {
	customErrs := CustomValidationErrors{
		{Field: "page", Message: "must be a positive integer"},
	}

	msg, fieldErrors := extractValidationError(customErrs)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "page", fieldErrors[0].Field)
	assert.Equal(t, "must be a positive integer", fieldErrors[0].Error)
}

func TestExtractValidationErrorUnknownError(t *testing.T) {
	msg, fieldErrors := extractValidationError(assert.AnError)

	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "payload", fieldErrors[0].Field)
}
