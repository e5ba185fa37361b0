package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusConflict},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeTokenExpired, http.StatusForbidden},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_Is_MatchesByCode(t *testing.T) {
	err := NotFound("combination not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestError_WithCause(t *testing.T) {
	cause := stderrors.New("key not found")
	err := NotFound("combination not found").WithCause(cause)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "combination not found")
	assert.Contains(t, err.Error(), "key not found")
}

func TestError_WithDetails(t *testing.T) {
	err := Validation("missing required fields").WithDetails([]string{"top", "bag"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"top", "bag"}, err.Details)
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{"email": "is required"})

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.NotNil(t, err.Details)
}

func TestError_As(t *testing.T) {
	var domainErr *Error
	wrapped := Conflict("email already registered").WithCause(stderrors.New("idx hit"))

	assert.True(t, stderrors.As(wrapped, &domainErr))
	assert.Equal(t, CodeConflict, domainErr.Code)
}
