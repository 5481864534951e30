package store

import (
	"database/sql"

	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the dialect used to open
// it, so that migrations and error translation can stay driver-aware.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all embedded schema migrations to the database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
