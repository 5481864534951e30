package http

import (
	"errors"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/service"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/internal/validators"
)

// errorClass pairs the classification kind with the business code and the
// public message that may safely cross the wire.
type errorClass struct {
	kind    apperr.Kind
	code    apperr.BusinessCode
	message string
}

// errorClassMap assigns every well-known sentinel error its class. Anything
// not listed here is an internal error: the caller gets the generic message
// and the cause stays in the logs.
var errorClassMap = map[error]errorClass{
	service.ErrInvalidDataProvided: {apperr.KindValidation, apperr.CodeBadRequest, "invalid data provided"},
	service.ErrWrongCredentials:    {apperr.KindUnauthorized, apperr.CodeUnauthorized, "wrong email or password"},
	service.ErrTokenIsExpired:      {apperr.KindUnauthorized, apperr.CodeTokenExpired, "token expired"},
	service.ErrTokenIsInvalid:      {apperr.KindUnauthorized, apperr.CodeTokenInvalid, "token invalid"},

	store.ErrUserAlreadyExists: {apperr.KindConflict, apperr.CodeDuplicateResource, "user already exists"},
	store.ErrNoUserWasFound:    {apperr.KindNotFound, apperr.CodeResourceNotFound, "user not found"},
}

// classify maps an arbitrary error from the service or store layer onto
// exactly one [apperr.Error].
//
// Classification order:
//  1. Already-classified errors pass through untouched.
//  2. Validation failures keep their per-field details.
//  3. Known sentinel errors get the class from errorClassMap.
//  4. Everything else is an internal error with the generic public message.
func classify(err error) *apperr.Error {
	var classified *apperr.Error
	if errors.As(err, &classified) {
		return classified
	}

	var validationErrs *validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		return apperr.Validation(validationErrs.Error(), validationErrs.Fields, err)
	}

	for target, class := range errorClassMap {
		if errors.Is(err, target) {
			return apperr.New(class.kind, class.code, class.message, err)
		}
	}

	return apperr.Internal(err)
}
