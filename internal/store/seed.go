package store

import (
	"context"

	"github.com/shopspring/decimal"

	"fleetsync/internal/cryptox"
	"fleetsync/internal/dbx"
	"fleetsync/internal/models"
	"fleetsync/internal/store/users"
	"fleetsync/internal/store/vehicles"
)

func assetRef(id int) *int { return &id }

// Seed inserts the fixed admin roster and the initial fleet, each only when
// its table is still empty. Each table is seeded in one transaction so a
// crash mid-seed cannot leave a partial roster behind. Seed vehicles carry
// bundled-image references so image migration has something to promote on
// the first sync.
func (r *Repositories) Seed(ctx context.Context) error {
	if err := dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)
		n, err := repo.Count(ctx)
		if err != nil || n > 0 {
			return err
		}
		admins := []models.User{
			{Name: "Byron", PasswordHash: cryptox.HashSHA256Hex("Flores"), IsAdmin: true},
			{Name: "Jordi", PasswordHash: cryptox.HashSHA256Hex("Pila"), IsAdmin: true},
			{Name: "Michael", PasswordHash: cryptox.HashSHA256Hex("Barrionuevo"), IsAdmin: true},
			{Name: "Joffre", PasswordHash: cryptox.HashSHA256Hex("Arias"), IsAdmin: true},
			{Name: "Edgar", PasswordHash: cryptox.HashSHA256Hex("Tipan"), IsAdmin: true},
			{Name: "Kevin", PasswordHash: cryptox.HashSHA256Hex("Hurtado"), IsAdmin: true},
			{Name: "Angelo", PasswordHash: cryptox.HashSHA256Hex("Pujota"), IsAdmin: true},
			{Name: "Cristian", PasswordHash: cryptox.HashSHA256Hex("Lechon"), IsAdmin: true},
		}
		return repo.InsertMany(ctx, admins)
	}); err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := vehicles.NewSQLiteRepository(tx)
		n, err := repo.Count(ctx)
		if err != nil || n > 0 {
			return err
		}
		fleet := []models.Vehicle{
			{Plate: "ABC123", Brand: "Toyota", Year: 2020, Color: "Red", DailyRate: decimal.RequireFromString("50.0"), Active: true, ImageAssetID: assetRef(1)},
			{Plate: "XYZ789", Brand: "Chevrolet", Year: 2019, Color: "Black", DailyRate: decimal.RequireFromString("45.0"), Active: false, ImageAssetID: assetRef(2)},
			{Plate: "DEF456", Brand: "Nissan", Year: 2022, Color: "Blue", DailyRate: decimal.RequireFromString("60.0"), Active: true, ImageAssetID: assetRef(3)},
			{Plate: "AUC455", Brand: "Hyundai", Year: 2025, Color: "Black", DailyRate: decimal.RequireFromString("75.0"), Active: true, ImageAssetID: assetRef(4)},
			{Plate: "TIL777", Brand: "Mazda", Year: 2018, Color: "Red", DailyRate: decimal.RequireFromString("35.0"), Active: true, ImageAssetID: assetRef(5)},
		}
		for i := range fleet {
			if err := repo.Upsert(ctx, &fleet[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
