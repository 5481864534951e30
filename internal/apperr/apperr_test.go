package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_HTTPStatus_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		wantStatus int
	}{
		{name: "validation maps to 400", kind: KindValidation, wantStatus: http.StatusBadRequest},
		{name: "unauthorized maps to 401", kind: KindUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden maps to 403", kind: KindForbidden, wantStatus: http.StatusForbidden},
		{name: "not found maps to 404", kind: KindNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict maps to 409", kind: KindConflict, wantStatus: http.StatusConflict},
		{name: "internal maps to 500", kind: KindInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.kind.HTTPStatus())
		})
	}
}

func TestBusinessCode_InSuccessRange(t *testing.T) {
	assert.True(t, CodeSuccess.InSuccessRange())
	assert.True(t, CodeCreated.InSuccessRange())
	assert.True(t, CodeAccepted.InSuccessRange())

	failureCodes := []BusinessCode{
		CodeBadRequest, CodeValidationError, CodeParamError,
		CodeUnauthorized, CodeTokenExpired, CodeTokenInvalid,
		CodeForbidden, CodeAccessDenied,
		CodeNotFound, CodeResourceNotFound,
		CodeConflict, CodeDuplicateResource,
		CodeInternalError, CodeServiceUnavailable, CodeDatabaseError,
		CodeThirdPartyError, CodeExternalAPIError,
	}
	for _, code := range failureCodes {
		assert.False(t, code.InSuccessRange(), "code %d must be outside the success range", code)
	}
}

func TestInternal_NeverLeaksCause(t *testing.T) {
	cause := errors.New("pq: connection refused to db host 10.0.0.3")

	e := Internal(cause)

	assert.Equal(t, GenericInternalMessage, e.Message())
	assert.NotContains(t, e.Message(), "10.0.0.3")
	assert.Equal(t, CodeInternalError, e.Code())
	assert.Equal(t, KindInternal, e.Kind())

	// the cause stays reachable for logging and errors.Is
	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "connection refused")
}

func TestNew_InternalKindOverridesMessage(t *testing.T) {
	e := New(KindInternal, CodeDatabaseError, "scan failed on users table", errors.New("boom"))

	assert.Equal(t, GenericInternalMessage, e.Message())
	assert.Equal(t, CodeDatabaseError, e.Code())
}

func TestValidation_CarriesAllFields(t *testing.T) {
	fields := []models.FieldError{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must be at least 8 characters"},
	}

	e := Validation("email: must be a valid email address; password: must be at least 8 characters", fields, nil)

	require.Len(t, e.Fields(), 2)
	assert.Equal(t, "email", e.Fields()[0].Field)
	assert.Contains(t, e.Message(), "email")
	assert.Contains(t, e.Message(), "password")
	assert.Equal(t, CodeValidationError, e.Code())
}
