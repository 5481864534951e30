package service

import (
	"context"
	"fmt"

	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/models"
)

// userService is the concrete implementation of UserService providing
// read-only access to user accounts.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns one page of user accounts (newest first) along with the
// total number of accounts.
//
// Page numbering starts at 1; callers are expected to have validated the
// paging parameters already.
func (s *userService) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	if page < 1 || pageSize < 1 {
		log.Error().Int("page", page).Int("page_size", pageSize).Msg("invalid paging parameters")
		return nil, 0, ErrInvalidDataProvided
	}

	users, total, err := s.userRepository.ListUsers(ctx, page, pageSize)
	if err != nil {
		log.Err(err).Int("page", page).Int("page_size", pageSize).Msg("user listing failed")
		return nil, 0, fmt.Errorf("user listing failed: %w", err)
	}

	return users, total, nil
}

// GetUser returns the account with the given ID.
//
// Returns a wrapped store.ErrNoUserWasFound when no such account exists.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
