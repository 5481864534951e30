package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test-role")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic and must not write anywhere
	l.Info().Str("key", "value").Msg("discarded")
	l.Error().Msg("also discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	l := Nop()
	ctx := l.Logger.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	l := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.Logger.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)
}
