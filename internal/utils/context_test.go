package utils

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 42, userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	// wrong type under the key
	ctx = context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetTokenFromContext(t *testing.T) {
	token := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
		UserID:           42,
	}
	ctx := context.WithValue(context.Background(), TokenCtxKey, token)

	got, ok := GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", got.Subject)
	assert.EqualValues(t, 42, got.UserID)

	_, ok = GetTokenFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, "req-123")

	requestID, ok := GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-123", requestID)

	_, ok = GetRequestIDFromContext(context.Background())
	assert.False(t, ok)
}
