package service

import (
	"context"

	"github.com/ruablog/rua-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
