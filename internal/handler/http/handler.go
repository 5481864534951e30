package http

import (
	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/service"
	"github.com/ruablog/rua-api/internal/utils"
	"github.com/ruablog/rua-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// version is the build version of the running binary, stamped into the
	// "version" field of every envelope. "unknown" for unstamped builds.
	version string

	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validator:  validator,
		version:    version,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
