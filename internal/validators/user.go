// Package validators implements payload validation for the API's request
// types. Each route statically declares its expected payload shape; the
// validator resolves the rule set from the payload's type and reports every
// failing field at once.
package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/ruablog/rua-api/models"
)

// Field name constants referenced in validation messages. They match the
// JSON field names of the request models.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPage     = "page"
	FieldPageSize = "page_size"
)

// Validation bounds for user payloads.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 8
	PageSizeMax       = 100
)

// emailPattern is a pragmatic address check: one @, non-empty local part,
// and a dotted domain. Full RFC 5322 parsing is deliberately out of scope.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserValidator implements [Validator] for the user-facing request models:
// CreateUserRequest, LoginRequest, and ListUsersRequest. Both value and
// pointer forms of each model are accepted.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.CreateUserRequest / *models.CreateUserRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.ListUsersRequest / *models.ListUsersRequest
//
// Returns ErrUnsupportedType if obj does not match any known model and a
// [*ValidationErrors] listing every broken rule otherwise.
func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUser(value)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ListUsersRequest:
		return v.validateListUsers(value)
	case *models.ListUsersRequest:
		return v.validateListUsers(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreateUser(req models.CreateUserRequest) error {
	errs := &ValidationErrors{}

	switch length := utf8.RuneCountInString(req.Username); {
	case length == 0:
		errs.add(FieldUsername, "is required")
	case length < UsernameMinLength || length > UsernameMaxLength:
		errs.add(FieldUsername, "must be between 3 and 50 characters")
	}

	switch {
	case req.Email == "":
		errs.add(FieldEmail, "is required")
	case !emailPattern.MatchString(req.Email):
		errs.add(FieldEmail, "must be a valid email address")
	}

	switch {
	case req.Password == "":
		errs.add(FieldPassword, "is required")
	case utf8.RuneCountInString(req.Password) < PasswordMinLength:
		errs.add(FieldPassword, "must be at least 8 characters")
	}

	return errs.orNil()
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	errs := &ValidationErrors{}

	switch {
	case req.Email == "":
		errs.add(FieldEmail, "is required")
	case !emailPattern.MatchString(req.Email):
		errs.add(FieldEmail, "must be a valid email address")
	}

	if req.Password == "" {
		errs.add(FieldPassword, "is required")
	}

	return errs.orNil()
}

func (v *UserValidator) validateListUsers(req models.ListUsersRequest) error {
	errs := &ValidationErrors{}

	if req.Page < 1 {
		errs.add(FieldPage, "must be at least 1")
	}

	if req.PageSize < 1 || req.PageSize > PageSizeMax {
		errs.add(FieldPageSize, "must be between 1 and 100")
	}

	return errs.orNil()
}
