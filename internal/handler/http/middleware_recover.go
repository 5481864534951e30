package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/logger"
)

// withRecovery converts a downstream panic into a regular internal-error
// envelope, so even a programming error produces a well-formed response with
// the request's correlation id. The panic value and stack are logged; the
// client sees only the generic internal message.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log := logger.FromRequest(r)
				log.Error().
					Any("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				h.writeFailure(w, r, apperr.Internal(fmt.Errorf("panic: %v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
