// Package vehicles persists Vehicle records in the local store.
package vehicles

import (
	"context"

	"fleetsync/internal/models"
)

// Repository is the local-store access contract for vehicles.
type Repository interface {
	// Upsert inserts or replaces a vehicle by plate.
	Upsert(ctx context.Context, v *models.Vehicle) error

	// Update replaces an existing vehicle's fields by plate.
	Update(ctx context.Context, v *models.Vehicle) error

	// Delete removes the vehicle with the given plate.
	Delete(ctx context.Context, plate string) error

	// GetByPlate returns the vehicle with the given plate, or ErrNotFound.
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)

	// GetAll returns a point-in-time snapshot of the whole table,
	// ordered by brand.
	GetAll(ctx context.Context) ([]models.Vehicle, error)

	// Count returns the number of stored vehicles.
	Count(ctx context.Context) (int, error)
}
