package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	h.writeSuccess(w, r, buildInfo)
}

// root is a liveness ping.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, "RUA")
}
