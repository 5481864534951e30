package store

import (
	"context"
	"fmt"

	"github.com/ruablog/rua-api/internal/config"
	"github.com/ruablog/rua-api/internal/logger"
)

// Repositories aggregates the persistence interfaces the service layer
// depends on.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories connects to the configured database backend, applies the
// embedded migrations, and wires up the repositories.
//
// The backend is selected by cfg.Driver: "postgres" (default) or "sqlite"
// for local development.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "", "postgres":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
