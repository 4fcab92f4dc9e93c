package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

// UnitRepository handles database operations for units
type UnitRepository struct {
	db *pgxpool.Pool
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{
		db: db,
	}
}

// GetAll retrieves all units ordered by name
func (r *UnitRepository) GetAll(ctx context.Context) ([]*models.Unit, error) {
	query := `
		SELECT id, name, unit_type, callsign, image_url
		FROM units
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		var unit models.Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.UnitType, &unit.Callsign, &unit.ImageURL); err != nil {
			return nil, err
		}
		units = append(units, &unit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}

// GetByID retrieves a unit by ID
func (r *UnitRepository) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	query := `
		SELECT id, name, unit_type, callsign, image_url
		FROM units
		WHERE id = $1
	`

	var unit models.Unit
	err := r.db.QueryRow(ctx, query, id).Scan(&unit.ID, &unit.Name, &unit.UnitType, &unit.Callsign, &unit.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, fmt.Errorf("error retrieving unit: %w", err)
	}

	return &unit, nil
}

// Create inserts a new unit
func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	query := `
		INSERT INTO units (name, unit_type, callsign, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, unit.Name, unit.UnitType, unit.Callsign, unit.ImageURL).Scan(&unit.ID)
	if err != nil {
		return fmt.Errorf("error creating unit: %w", err)
	}

	return nil
}

// Update updates an existing unit
func (r *UnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	query := `
		UPDATE units
		SET name = $2, unit_type = $3, callsign = $4, image_url = $5
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, unit.ID, unit.Name, unit.UnitType, unit.Callsign, unit.ImageURL)
	if err != nil {
		return fmt.Errorf("error updating unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}

	return nil
}

// Delete removes a unit that no personnel record references. Positions
// scoped to the unit are removed by the cascading foreign key.
func (r *UnitRepository) Delete(ctx context.Context, id int64) error {
	var inUse bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personnel WHERE unit_id = $1)`, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("error checking unit usage: %w", err)
	}

	if inUse {
		return apperrors.NewConflictError("unit has assigned personnel and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUnitNotFound
	}

	return nil
}
