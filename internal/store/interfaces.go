package store

import (
	"context"

	"github.com/ruablog/rua-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence boundary for user accounts. Failures are
// reported through the sentinel errors of this package so that upper layers
// can classify them without knowing the database driver.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists when the email or
	// username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given primary key, or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns one page of accounts ordered by creation time
	// (newest first) together with the total number of accounts.
	ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error)

	// TouchLastLogin records a successful login timestamp for the account.
	TouchLastLogin(ctx context.Context, userID int64) error
}
