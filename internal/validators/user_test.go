package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_CreateUser_TableTest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name       string
		req        models.CreateUserRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  models.CreateUserRequest{Username: "rua", Email: "rua@example.com", Password: "long-enough"},
		},
		{
			name:       "empty body reports every required field",
			req:        models.CreateUserRequest{},
			wantFields: []string{FieldUsername, FieldEmail, FieldPassword},
		},
		{
			name:       "username too short",
			req:        models.CreateUserRequest{Username: "ab", Email: "a@b.co", Password: "long-enough"},
			wantFields: []string{FieldUsername},
		},
		{
			name:       "username too long",
			req:        models.CreateUserRequest{Username: strings.Repeat("x", 51), Email: "a@b.co", Password: "long-enough"},
			wantFields: []string{FieldUsername},
		},
		{
			name:       "invalid email",
			req:        models.CreateUserRequest{Username: "rua", Email: "not-an-email", Password: "long-enough"},
			wantFields: []string{FieldEmail},
		},
		{
			name:       "short password",
			req:        models.CreateUserRequest{Username: "rua", Email: "a@b.co", Password: "short"},
			wantFields: []string{FieldPassword},
		},
		{
			name:       "two broken rules reported together",
			req:        models.CreateUserRequest{Username: "ab", Email: "bad", Password: "long-enough"},
			wantFields: []string{FieldUsername, FieldEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var vErrs *ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			require.Len(t, vErrs.Fields, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, vErrs.Fields[i].Field)
				// the aggregated message mentions every failing field
				assert.Contains(t, err.Error(), field)
			}
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), models.LoginRequest{Email: "rua@example.com", Password: "secret123"})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.LoginRequest{})
	var vErrs *ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Len(t, vErrs.Fields, 2)
}

func TestUserValidator_ListUsers(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		req     models.ListUsersRequest
		wantErr bool
	}{
		{name: "valid", req: models.ListUsersRequest{Page: 1, PageSize: 20}},
		{name: "max page size", req: models.ListUsersRequest{Page: 3, PageSize: 100}},
		{name: "zero page", req: models.ListUsersRequest{Page: 0, PageSize: 20}, wantErr: true},
		{name: "zero page size", req: models.ListUsersRequest{Page: 1, PageSize: 0}, wantErr: true},
		{name: "oversized page size", req: models.ListUsersRequest{Page: 1, PageSize: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserValidator_PointerFormsAndUnsupported(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), &models.CreateUserRequest{Username: "rua", Email: "a@b.co", Password: "long-enough"})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
