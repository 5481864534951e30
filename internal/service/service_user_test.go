package service

import (
	"context"
	"testing"

	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/mock"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_ListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())
	ctx := context.Background()

	users := []models.User{
		{UserID: 2, Username: "second"},
		{UserID: 1, Username: "first"},
	}
	mockRepo.EXPECT().ListUsers(ctx, 1, 10).Return(users, int64(12), nil)

	got, total, err := svc.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, users, got)
	assert.Equal(t, int64(12), total)
}

func TestUserService_ListUsers_InvalidPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewUserService(mock.NewMockUserRepository(ctrl), logger.Nop())

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero page size", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ListUsers(context.Background(), tt.page, tt.pageSize)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_ListUsers_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().ListUsers(ctx, 1, 10).Return(nil, int64(0), assert.AnError)

	_, _, err := svc.ListUsers(ctx, 1, 10)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUserService_GetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{UserID: 7, Username: "rua"}, nil)

	user, err := svc.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "rua", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(404)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(ctx, 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
