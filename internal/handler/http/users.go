package http

import (
	"net/http"
	"strconv"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/internal/utils"
	"github.com/ruablog/rua-api/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseListUsersRequest(r)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	users, total, err := h.services.UserService.ListUsers(ctx, req.Page, req.PageSize)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}

	h.writePaginated(w, r, sanitized, total, req.Page, req.PageSize)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeFailure(w, r, ErrNoUserIDInContext)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, r, user.Sanitized())
}

// parseListUsersRequest reads the page and page_size query parameters,
// applying defaults for absent values. A present but non-numeric parameter
// is a parameter error, reported with the offending field name.
func parseListUsersRequest(r *http.Request) (models.ListUsersRequest, error) {
	req := models.ListUsersRequest{
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}

	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, apperr.New(apperr.KindValidation, apperr.CodeParamError, "page must be an integer", err)
		}
		req.Page = page
	}

	if raw := query.Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return req, apperr.New(apperr.KindValidation, apperr.CodeParamError, "page_size must be an integer", err)
		}
		req.PageSize = pageSize
	}

	return req, nil
}
