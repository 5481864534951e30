package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ruablog/rua-api/internal/apperr"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID, h.withLogging, h.withRecovery)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/", h.root)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/user/me", h.me)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeFailureAs(w, r,
			apperr.New(apperr.KindNotFound, apperr.CodeNotFound, "route not found", nil),
			http.StatusNotFound)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeFailureAs(w, r,
			apperr.New(apperr.KindValidation, apperr.CodeBadRequest, "method not allowed", nil),
			http.StatusMethodNotAllowed)
	})

	return router
}
