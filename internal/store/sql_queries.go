package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, avatar_url, bio)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, email, password_hash, avatar_url, bio, last_login, created_at, updated_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, avatar_url, bio, last_login, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, avatar_url, bio, last_login, created_at, updated_at
    FROM users
    WHERE id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	touchLastLogin = `UPDATE users
    SET last_login = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
    WHERE id = $1;`
)

// userColumns is the canonical column order scanned into models.User.
var userColumns = []string{
	"id", "username", "email", "password_hash",
	"avatar_url", "bio", "last_login", "created_at", "updated_at",
}

// buildListUsersQuery builds the paginated listing SELECT. Pagination values
// arrive pre-validated (page >= 1, pageSize >= 1); the offset is derived
// here so every caller paginates the same way.
func buildListUsersQuery(page, pageSize int) (string, []any, error) {
	return sq.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(page-1) * uint64(pageSize)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
