// Package store opens the local SQLite database, applies migrations, and
// seeds first-run data.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"fleetsync/internal/store/migrations"
	"fleetsync/internal/store/users"
	"fleetsync/internal/store/vehicles"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local-store access objects plus the underlying
// handle (needed for transactional seeding).
type Repositories struct {
	DB       *sql.DB
	Users    users.Repository
	Vehicles vehicles.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the database at dsn, migrates it,
// and returns the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:       db,
		Users:    users.NewSQLiteRepository(db),
		Vehicles: vehicles.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
