package http

import (
	"encoding/json"
	"net/http"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, r,
			apperr.New(apperr.KindValidation, apperr.CodeBadRequest, "invalid JSON body", err))
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	h.writeCreated(w, r, models.AuthResponse{
		User:  registeredUser.Sanitized(),
		Token: token.SignedString,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, r,
			apperr.New(apperr.KindValidation, apperr.CodeBadRequest, "invalid JSON body", err))
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	h.writeSuccess(w, r, models.AuthResponse{
		User:  foundUser.Sanitized(),
		Token: token.SignedString,
	})
}
