package vehicles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fleetsync/internal/common"
	"fleetsync/internal/dbx"
	"fleetsync/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
//
// The daily rate is stored as its decimal string so values survive storage
// without float conversion.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, v *models.Vehicle) error {
	query := `INSERT INTO vehicles (plate, brand, year, color, daily_rate, active, image_asset_id, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(plate) DO UPDATE SET brand = excluded.brand,
				year = excluded.year,
				color = excluded.color,
				daily_rate = excluded.daily_rate,
				active = excluded.active,
				image_asset_id = excluded.image_asset_id,
				image_url = excluded.image_url
	`
	_, err := r.db.ExecContext(ctx, query,
		v.Plate, v.Brand, v.Year, v.Color, v.DailyRate.String(), v.Active, v.ImageAssetID, v.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert vehicle: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, v *models.Vehicle) error {
	query := `UPDATE vehicles SET brand = ?, year = ?, color = ?, daily_rate = ?,
			active = ?, image_asset_id = ?, image_url = ? WHERE plate = ?`
	res, err := r.db.ExecContext(ctx, query,
		v.Brand, v.Year, v.Color, v.DailyRate.String(), v.Active, v.ImageAssetID, v.ImageURL, v.Plate)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, plate string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE plate = ?`, plate)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	query := `SELECT plate, brand, year, color, daily_rate, active, image_asset_id, image_url
			FROM vehicles WHERE plate = ?`
	row := r.db.QueryRowContext(ctx, query, plate)

	v, err := scanVehicle(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Vehicle, error) {
	query := `SELECT plate, brand, year, color, daily_rate, active, image_asset_id, image_url
			FROM vehicles ORDER BY brand ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select vehicles: %w", err)
	}
	defer rows.Close()

	var result []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return n, nil
}

func scanVehicle(scan func(dest ...any) error) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	var rate string
	var assetID sql.NullInt64
	var imageURL sql.NullString

	if err := scan(&v.Plate, &v.Brand, &v.Year, &v.Color, &rate, &v.Active, &assetID, &imageURL); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("stored daily rate %q: %w", rate, err)
	}
	v.DailyRate = parsed

	if assetID.Valid {
		id := int(assetID.Int64)
		v.ImageAssetID = &id
	}
	if imageURL.Valid {
		url := imageURL.String
		v.ImageURL = &url
	}
	return v, nil
}
