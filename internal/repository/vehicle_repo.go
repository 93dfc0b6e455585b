package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"rentacar/internal/db"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(sqlDB *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: sqlDB}
}

// UpsertAll writes the full fleet snapshot in one transaction. Vehicles
// deleted from the fleet are removed from the table as well.
func (r *VehicleRepository) UpsertAll(ctx context.Context, vehicles []db.VehicleRecord) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting vehicle upsert tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO vehicles (id, model, plate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET model = EXCLUDED.model, plate = EXCLUDED.plate, status = EXCLUDED.status, updated_at = NOW()`

	ids := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		if _, err := tx.ExecContext(ctx, query, v.ID, v.Model, v.Plate, v.Status); err != nil {
			return fmt.Errorf("error upserting vehicle %s: %w", v.ID, err)
		}
		ids = append(ids, v.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE id <> ALL($1)`, pq.Array(ids)); err != nil {
		return fmt.Errorf("error pruning removed vehicles: %w", err)
	}

	return tx.Commit()
}

func (r *VehicleRepository) LoadAll(ctx context.Context) ([]db.VehicleRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, model, plate, status, created_at, updated_at FROM vehicles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.VehicleRecord
	for rows.Next() {
		var v db.VehicleRecord
		if err := rows.Scan(&v.ID, &v.Model, &v.Plate, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicles: %w", err)
	}
	return vehicles, nil
}
