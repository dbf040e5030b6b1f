// Package users persists User records in the local store.
package users

import (
	"context"

	"fleetsync/internal/models"
)

// Repository is the local-store access contract for users.
type Repository interface {
	// Insert stores a new user and returns the assigned id.
	Insert(ctx context.Context, u *models.User) (int64, error)

	// InsertMany stores several users in one call (first-run seeding).
	InsertMany(ctx context.Context, us []models.User) error

	// Upsert inserts or replaces a user by id (reconciliation pull phase).
	Upsert(ctx context.Context, u *models.User) error

	// GetByName returns the user with the given name, or ErrNotFound.
	GetByName(ctx context.Context, name string) (*models.User, error)

	// GetAll returns a point-in-time snapshot of the whole table.
	GetAll(ctx context.Context) ([]models.User, error)

	// Count returns the number of stored users.
	Count(ctx context.Context) (int, error)
}
