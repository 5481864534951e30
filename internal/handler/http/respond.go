package http

import (
	"net/http"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/response"
	"github.com/ruablog/rua-api/internal/utils"
	"github.com/ruablog/rua-api/models"
)

// requestID returns the correlation id minted by withRequestID. An empty id
// means the middleware chain was bypassed; envelopes are still written, just
// without correlation.
func requestID(r *http.Request) string {
	id, _ := utils.GetRequestIDFromContext(r.Context())
	return id
}

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	h.write(w, r, response.Success(requestID(r), h.version, data), http.StatusOK)
}

func (h *Handler) writeCreated(w http.ResponseWriter, r *http.Request, data any) {
	h.write(w, r, response.Created(requestID(r), h.version, data), http.StatusCreated)
}

func (h *Handler) writePaginated(w http.ResponseWriter, r *http.Request, items []models.User, total int64, page, pageSize int) {
	h.write(w, r, response.Paginated(requestID(r), h.version, items, total, page, pageSize), http.StatusOK)
}

// writeFailure classifies err, logs it once with its full cause, and writes
// the failure envelope with the HTTP status implied by the error's kind.
// This is the only place a service or store error turns into a response.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	e := classify(err)
	h.writeFailureAs(w, r, e, e.HTTPStatus())
}

// writeFailureAs is writeFailure with an explicit HTTP status, for the rare
// spots (404/405 fallbacks) where the routing layer knows better than the
// error's kind.
func (h *Handler) writeFailureAs(w http.ResponseWriter, r *http.Request, e *apperr.Error, status int) {
	log := logger.FromRequest(r)

	evt := log.Error()
	if status < http.StatusInternalServerError {
		evt = log.Warn()
	}
	evt.
		Int("code", int(e.Code())).
		Int("status", status).
		Str("error", e.Error()). // full chain incl. cause; never leaves the logs
		Send()

	h.write(w, r, response.Failure(e, requestID(r), h.version), status)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, envelope models.Envelope, status int) {
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response envelope failed")
	}
}
