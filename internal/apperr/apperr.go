// Package apperr defines the closed error taxonomy of the API: every internal
// failure is mapped to exactly one [Kind] before it reaches the wire.
//
// An [Error] keeps two separate message channels. The public message (and the
// optional per-field details) is what the envelope codec serializes; the
// internal cause is reachable only through Error/Unwrap and is meant for
// server-side logging. For [KindInternal] the public message is always the
// fixed [GenericInternalMessage] so that diagnostic detail never leaks to the
// network caller.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/ruablog/rua-api/models"
)

// GenericInternalMessage is the public message of every internal failure,
// regardless of cause.
const GenericInternalMessage = "an internal error occurred"

// Kind is the closed set of failure categories. Every classified error
// belongs to exactly one kind; the kind alone determines the HTTP status of
// the failure envelope.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus returns the conventional transport status code for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure: a kind, a business code, a user-facing
// message (plus optional per-field details), and the original cause.
// The cause is unexported and never serialized; it surfaces only through
// [Error.Error] and [Error.Unwrap] for logging and errors.Is matching.
type Error struct {
	kind    Kind
	code    BusinessCode
	message string
	fields  []models.FieldError
	cause   error
}

// New constructs a classified error. For [KindInternal] the given message is
// ignored and [GenericInternalMessage] is used instead.
func New(kind Kind, code BusinessCode, message string, cause error) *Error {
	if kind == KindInternal {
		message = GenericInternalMessage
	}

	return &Error{
		kind:    kind,
		code:    code,
		message: message,
		cause:   cause,
	}
}

// Validation constructs a [KindValidation] error carrying one entry per
// failing field. The public message enumerates every field so a caller can
// fix all problems in one round trip.
func Validation(message string, fields []models.FieldError, cause error) *Error {
	return &Error{
		kind:    KindValidation,
		code:    CodeValidationError,
		message: message,
		fields:  fields,
		cause:   cause,
	}
}

// Internal constructs a [KindInternal] error wrapping cause. The public
// message is always [GenericInternalMessage].
func Internal(cause error) *Error {
	return New(KindInternal, CodeInternalError, "", cause)
}

// Kind returns the failure category.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the business code carried in the failure envelope.
func (e *Error) Code() BusinessCode { return e.code }

// Message returns the user-facing message. It never contains internal
// diagnostic detail.
func (e *Error) Message() string { return e.message }

// Fields returns the per-field validation details, nil for non-validation
// kinds.
func (e *Error) Fields() []models.FieldError { return e.fields }

// HTTPStatus returns the transport status derived from the error's kind.
func (e *Error) HTTPStatus() int { return e.kind.HTTPStatus() }

// Error implements the error interface with the internal representation,
// including the wrapped cause. This string is for logs, never for responses.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.kind, e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.code, e.message)
}

// Unwrap exposes the internal cause for errors.Is / errors.As matching.
func (e *Error) Unwrap() error { return e.cause }
