package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/service"
	"github.com/ruablog/rua-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the verified token under [utils.TokenCtxKey] and the authenticated user's
// ID under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Every rejection is a 401 envelope, but the business code distinguishes the
// reason:
//   - missing or malformed "Authorization" header — [apperr.CodeUnauthorized]
//   - expired token — [apperr.CodeTokenExpired]
//   - invalid signature, issuer, or structure — [apperr.CodeTokenInvalid]
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeFailure(w, r,
				apperr.New(apperr.KindUnauthorized, apperr.CodeUnauthorized, "authorization required", ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeFailure(w, r,
				apperr.New(apperr.KindUnauthorized, apperr.CodeUnauthorized, "invalid authorization header", err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				h.writeFailure(w, r,
					apperr.New(apperr.KindUnauthorized, apperr.CodeTokenExpired, "token expired", err))
			default:
				h.writeFailure(w, r,
					apperr.New(apperr.KindUnauthorized, apperr.CodeTokenInvalid, "token invalid", err))
			}
			return
		}

		// Store the verified token and the user's ID in the context so that
		// downstream handlers can inspect the claims without re-parsing.
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
