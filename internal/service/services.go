package service

import (
	"github.com/ruablog/rua-api/internal/config"
	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cfg.App, logger),
		UserService:    NewUserService(repos.UserRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
