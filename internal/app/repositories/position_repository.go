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

// PositionRepository handles database operations for unit positions
type PositionRepository struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{
		db: db,
	}
}

// GetByUnitID retrieves all positions for a unit ordered by name.
// A unit with no positions yields an empty, non-nil slice so callers can
// distinguish "none defined" from "not loaded".
func (r *PositionRepository) GetByUnitID(ctx context.Context, unitID int64) ([]*models.UnitPosition, error) {
	query := `
		SELECT id, unit_id, name, description, color, is_leadership
		FROM unit_positions
		WHERE unit_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]*models.UnitPosition, 0)
	for rows.Next() {
		var position models.UnitPosition
		if err := rows.Scan(
			&position.ID,
			&position.UnitID,
			&position.Name,
			&position.Description,
			&position.Color,
			&position.IsLeadership,
		); err != nil {
			return nil, err
		}
		positions = append(positions, &position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*models.UnitPosition, error) {
	query := `
		SELECT id, unit_id, name, description, color, is_leadership
		FROM unit_positions
		WHERE id = $1
	`

	var position models.UnitPosition
	err := r.db.QueryRow(ctx, query, id).Scan(
		&position.ID,
		&position.UnitID,
		&position.Name,
		&position.Description,
		&position.Color,
		&position.IsLeadership,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}

	return &position, nil
}

// Create inserts a new position scoped to a unit
func (r *PositionRepository) Create(ctx context.Context, position *models.UnitPosition) error {
	query := `
		INSERT INTO unit_positions (unit_id, name, description, color, is_leadership)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		position.UnitID, position.Name, position.Description, position.Color, position.IsLeadership).Scan(&position.ID)
	if err != nil {
		return fmt.Errorf("error creating position: %w", err)
	}

	return nil
}

// Update updates an existing position
func (r *PositionRepository) Update(ctx context.Context, position *models.UnitPosition) error {
	query := `
		UPDATE unit_positions
		SET name = $2, description = $3, color = $4, is_leadership = $5
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query,
		position.ID, position.Name, position.Description, position.Color, position.IsLeadership)
	if err != nil {
		return fmt.Errorf("error updating position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// Delete removes a position; personnel holding it fall back to no position
// via the schema's ON DELETE SET NULL.
func (r *PositionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM unit_positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}
