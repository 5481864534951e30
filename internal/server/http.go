package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ruablog/rua-api/internal/config"
	"github.com/ruablog/rua-api/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// timeoutBody is the static 503 payload written when a request exceeds the
// configured request timeout. It cannot carry a correlation id or timestamp:
// by the time the timeout fires the request context is already dead.
const timeoutBody = `{"success":false,"code":50001,"message":"request timed out"}`

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, timeoutBody),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
