package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/service"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/internal/validators"
	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_SentinelErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   apperr.BusinessCode
		expectedStatus int
	}{
		{"invalid data", service.ErrInvalidDataProvided, apperr.CodeBadRequest, http.StatusBadRequest},
		{"wrong credentials", service.ErrWrongCredentials, apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpired, apperr.CodeTokenExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsInvalid, apperr.CodeTokenInvalid, http.StatusUnauthorized},
		{"duplicate user", store.ErrUserAlreadyExists, apperr.CodeDuplicateResource, http.StatusConflict},
		{"user not found", store.ErrNoUserWasFound, apperr.CodeResourceNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := classify(tt.err)
			assert.Equal(t, tt.expectedCode, e.Code())
			assert.Equal(t, tt.expectedStatus, e.HTTPStatus())
		})
	}
}

func TestClassify_WrappedSentinelErrors(t *testing.T) {
	err := fmt.Errorf("user creation ended with error: %w", store.ErrUserAlreadyExists)

	e := classify(err)
	assert.Equal(t, apperr.CodeDuplicateResource, e.Code())
}

func TestClassify_AlreadyClassifiedPassesThrough(t *testing.T) {
	original := apperr.New(apperr.KindForbidden, apperr.CodeAccessDenied, "access denied", nil)

	e := classify(fmt.Errorf("wrapped: %w", original))
	assert.Same(t, original, e)
}

func TestClassify_ValidationErrorsKeepFields(t *testing.T) {
	verrs := &validators.ValidationErrors{Fields: []models.FieldError{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "must be at least 8 characters"},
	}}

	e := classify(verrs)
	assert.Equal(t, apperr.CodeValidationError, e.Code())
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus())
	require.Len(t, e.Fields(), 2)
}

func TestClassify_UnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("pq: connection refused")

	e := classify(cause)
	assert.Equal(t, apperr.CodeInternalError, e.Code())
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
	assert.Equal(t, apperr.GenericInternalMessage, e.Message())
	assert.NotContains(t, e.Message(), "connection refused")
}
