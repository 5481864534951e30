package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrNoUserIDInContext indicates a protected handler ran without the
	// auth middleware having stored a user id first.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)
