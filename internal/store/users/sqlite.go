package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetsync/internal/common"
	"fleetsync/internal/dbx"
	"fleetsync/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, u *models.User) (int64, error) {
	query := `INSERT INTO users (name, password_hash, is_admin) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.PasswordHash, u.IsAdmin)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get assigned id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) InsertMany(ctx context.Context, us []models.User) error {
	for i := range us {
		id, err := r.Insert(ctx, &us[i])
		if err != nil {
			return err
		}
		us[i].ID = id
	}
	return nil
}

// Upsert inserts or replaces a user by id. Used by the reconciliation pull
// phase, where ids are already assigned.
func (r *SQLiteRepository) Upsert(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (id, name, password_hash, is_admin)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				password_hash = excluded.password_hash,
				is_admin = excluded.is_admin
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.PasswordHash, u.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	query := `SELECT id, name, password_hash, is_admin FROM users WHERE name = ? LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, name)

	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, name, password_hash, is_admin FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var item models.User
		if err := rows.Scan(&item.ID, &item.Name, &item.PasswordHash, &item.IsAdmin); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
