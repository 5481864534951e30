// Package utils provides general-purpose helper utilities used across the
// server: type-safe context keys, JWT token generation and validation,
// request-id generation, password hashing, and HTTP response writing.
package utils

import (
	"context"

	"github.com/ruablog/rua-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication middleware stores
// the authenticated user's identifier. Use GetUserIDFromContext for
// type-safe retrieval.
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key under which the authentication middleware stores
// the verified [models.Token] so handlers can inspect the full claim set
// (subject, issued-at, expiry). Use GetTokenFromContext for type-safe
// retrieval.
var TokenCtxKey = contextKey("token")

// RequestIDCtxKey is the key under which the request-id middleware stores
// the correlation id assigned to the request. Use GetRequestIDFromContext
// for type-safe retrieval.
var RequestIDCtxKey = contextKey("requestID")

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTokenFromContext retrieves the verified token of the authenticated
// request. Returns a zero token and false when the request did not pass
// through the authentication middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// GetRequestIDFromContext retrieves the correlation id assigned to the
// current request. Returns an empty string and false when the request did
// not pass through the request-id middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok
}
