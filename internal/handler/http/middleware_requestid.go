package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/ruablog/rua-api/internal/utils"
)

const requestIDHeader = "X-Request-Id"

// withRequestID assigns every inbound request a freshly generated
// correlation id. A client-supplied X-Request-Id header is never trusted:
// the server always mints its own, so ids are unique and well-formed across
// the whole log stream.
//
// The id is stored in the request context, attached to the context-scoped
// logger, and echoed back in the X-Request-Id response header.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := h.requestIDs.Generate()
		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
