package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// works against the "users" table on either supported backend (PostgreSQL in
// production, SQLite for local development).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - uniqueness violation on email or username → [ErrUserAlreadyExists]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
//   - scan failure → wrapped [ErrScanningRow]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash,
		nullIfEmpty(user.AvatarURL), nullIfEmpty(user.Bio))

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error persisting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered under the given email.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound]
//   - any other failure → wrapped [ErrExecutingQuery]
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error querying user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// FindUserByID retrieves the user with the given primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error querying user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListUsers returns one page of users ordered by creation time (newest
// first) together with the total number of accounts.
func (r *userRepository) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(page, pageSize)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, pageSize)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countUsers).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, total, nil
}

// TouchLastLogin records a successful login timestamp for the account.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchLastLogin, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row in [userColumns] order, converting nullable
// columns into their zero values.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		avatarURL sql.NullString
		bio       sql.NullString
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.UserID, &user.Username, &user.Email, &user.PasswordHash,
		&avatarURL, &bio, &lastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.AvatarURL = avatarURL.String
	user.Bio = bio.String
	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	return user, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
