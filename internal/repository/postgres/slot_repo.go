package postgres

import (
	"context"
	"database/sql"
	"errors"

	"athleticsplatform/internal/domain"
)

type slotRepository struct {
	DB *sql.DB
}

// NewSlotRepository returns a SlotStore backed by the storage_slots table
// (one row per named slot).
func NewSlotRepository(db *sql.DB) domain.SlotStore {
	return &slotRepository{
		DB: db,
	}
}

func (r *slotRepository) Get(ctx context.Context, name string) (string, bool, error) {
	query := `
		SELECT value
		FROM storage_slots
		WHERE name = $1
	`
	var value string
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *slotRepository) Set(ctx context.Context, name, value string) error {
	query := `
		INSERT INTO storage_slots (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET value = EXCLUDED.value
	`
	_, err := r.DB.ExecContext(ctx, query, name, value)
	return err
}

func (r *slotRepository) Remove(ctx context.Context, name string) error {
	query := `DELETE FROM storage_slots WHERE name = $1`
	_, err := r.DB.ExecContext(ctx, query, name)
	return err
}
