package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWithToken(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, page, pageSize int) ([]models.User, int64, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, pageSize)
			return []models.User{{UserID: 6}, {UserID: 5}}, 12, nil
		},
	}
	router := newTestHandler(t, nil, users).Init()

	rr := getWithToken(t, router, "/api/users?page=2&page_size=5")

	assert.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	assert.True(t, envelope.Success)
	assert.Equal(t, 20000, envelope.Code)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var page models.PaginatedData[models.User]
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Len(t, page.List, 2)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 5, page.Pagination.PageSize)
	assert.Equal(t, int64(12), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestListUsers_DefaultsApplied(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, page, pageSize int) ([]models.User, int64, error) {
			assert.Equal(t, defaultPage, page)
			assert.Equal(t, defaultPageSize, pageSize)
			return nil, 0, nil
		},
	}
	router := newTestHandler(t, nil, users).Init()

	rr := getWithToken(t, router, "/api/users")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListUsers_NonNumericParam(t *testing.T) {
	router := newTestRouter(t)

	rr := getWithToken(t, router, "/api/users?page=abc")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, 40002, envelope.Code)
}

func TestListUsers_OutOfBoundsParams(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "?page=0"},
		{"negative page", "?page=-3"},
		{"oversized page size", "?page_size=101"},
		{"zero page size", "?page_size=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := getWithToken(t, router, "/api/users"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			envelope := decodeEnvelope(t, rr)
			assert.Equal(t, 40001, envelope.Code)
			assert.NotEmpty(t, envelope.Errors)
		})
	}
}

func TestListUsers_EmptyPage(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context, _, _ int) ([]models.User, int64, error) {
			return []models.User{}, 0, nil
		},
	}
	router := newTestHandler(t, nil, users).Init()

	rr := getWithToken(t, router, "/api/users")

	assert.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var page models.PaginatedData[models.User]
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Equal(t, int64(0), page.Pagination.Total)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(1), userID)
			return models.User{UserID: userID, Username: "rua", PasswordHash: "secret-hash"}, nil
		},
	}
	router := newTestHandler(t, nil, users).Init()

	rr := getWithToken(t, router, "/api/user/me")

	assert.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	assert.True(t, envelope.Success)
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestMe_UserGone(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	router := newTestHandler(t, nil, users).Init()

	rr := getWithToken(t, router, "/api/user/me")

	assert.Equal(t, http.StatusNotFound, rr.Code)

	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, 40401, envelope.Code)
}
