package http

import (
	"net/http"
	"time"

	"github.com/ruablog/rua-api/internal/logger"
)

// withLogging emits an access-log pair for every request through the
// request-scoped logger (which already carries the correlation id): a
// "request started" event before the handler runs and a "request completed"
// event with status, size and duration after it returns.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		method := r.Method
		uri := r.RequestURI

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Msg("request started")

		start := time.Now()
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
