package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/dberrors"
)

// PersonnelRepository handles database operations for service records
type PersonnelRepository struct {
	db *pgxpool.Pool
}

// NewPersonnelRepository creates a new personnel repository
func NewPersonnelRepository(db *pgxpool.Pool) *PersonnelRepository {
	return &PersonnelRepository{
		db: db,
	}
}

// CreateTx inserts a personnel record inside an open transaction. The
// unique constraints on user_id and application_id back up the workflow's
// single-enlistment guarantee.
func (r *PersonnelRepository) CreateTx(ctx context.Context, tx pgx.Tx, personnel *models.Personnel) error {
	query := `
		INSERT INTO personnel (id, user_id, rank_id, unit_id, position_id, application_id, enlisted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if personnel.ID == uuid.Nil {
		personnel.ID = uuid.New()
	}
	personnel.EnlistedAt = time.Now()

	_, err := tx.Exec(ctx, query,
		personnel.ID,
		personnel.UserID,
		personnel.RankID,
		personnel.UnitID,
		personnel.PositionID,
		personnel.ApplicationID,
		personnel.EnlistedAt,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return apperrors.ErrPersonnelExists
		}
		return fmt.Errorf("error creating personnel record: %w", err)
	}

	return nil
}

const personnelSelect = `
	SELECT p.id, p.user_id, p.rank_id, p.unit_id, p.position_id, p.application_id, p.enlisted_at,
	       u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url,
	       r.id, r.name, r.abbreviation, r.sort_order, r.image_url,
	       un.id, un.name, un.unit_type, un.callsign, un.image_url
	FROM personnel p
	JOIN users u ON u.id = p.user_id
	JOIN ranks r ON r.id = p.rank_id
	JOIN units un ON un.id = p.unit_id
`

func scanPersonnelRow(row pgx.Row) (*models.Personnel, error) {
	var personnel models.Personnel
	var user models.User
	var rank models.Rank
	var unit models.Unit

	err := row.Scan(
		&personnel.ID,
		&personnel.UserID,
		&personnel.RankID,
		&personnel.UnitID,
		&personnel.PositionID,
		&personnel.ApplicationID,
		&personnel.EnlistedAt,
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.AvatarURL,
		&rank.ID,
		&rank.Name,
		&rank.Abbreviation,
		&rank.SortOrder,
		&rank.ImageURL,
		&unit.ID,
		&unit.Name,
		&unit.UnitType,
		&unit.Callsign,
		&unit.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	personnel.User = &user
	personnel.Rank = &rank
	personnel.Unit = &unit
	return &personnel, nil
}

// GetByID retrieves a service record with rank, unit and user embedded
func (r *PersonnelRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Personnel, error) {
	personnel, err := scanPersonnelRow(r.db.QueryRow(ctx, personnelSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("error retrieving personnel record: %w", err)
	}

	if personnel.PositionID != nil {
		position, err := r.getPosition(ctx, *personnel.PositionID)
		if err != nil {
			return nil, err
		}
		personnel.Position = position
	}

	return personnel, nil
}

// GetByUserID retrieves the service record for a user
func (r *PersonnelRepository) GetByUserID(ctx context.Context, userID int64) (*models.Personnel, error) {
	personnel, err := scanPersonnelRow(r.db.QueryRow(ctx, personnelSelect+` WHERE p.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("error retrieving personnel record: %w", err)
	}

	if personnel.PositionID != nil {
		position, err := r.getPosition(ctx, *personnel.PositionID)
		if err != nil {
			return nil, err
		}
		personnel.Position = position
	}

	return personnel, nil
}

func (r *PersonnelRepository) getPosition(ctx context.Context, id int64) (*models.UnitPosition, error) {
	var position models.UnitPosition
	err := r.db.QueryRow(ctx, `
		SELECT id, unit_id, name, description, color, is_leadership
		FROM unit_positions
		WHERE id = $1`, id).Scan(
		&position.ID,
		&position.UnitID,
		&position.Name,
		&position.Description,
		&position.Color,
		&position.IsLeadership,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}
	return &position, nil
}

// List retrieves service records ordered by rank then name, optionally
// filtered by unit, with pagination.
func (r *PersonnelRepository) List(ctx context.Context, unitID *int64, offset, limit int) ([]*models.Personnel, int64, error) {
	query := personnelSelect + `
		WHERE ($1::bigint IS NULL OR p.unit_id = $1)
		ORDER BY r.sort_order, u.last_name, u.first_name
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, unitID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing personnel: %w", err)
	}
	defer rows.Close()

	var records []*models.Personnel
	for rows.Next() {
		personnel, err := scanPersonnelRow(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, personnel)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM personnel WHERE ($1::bigint IS NULL OR unit_id = $1)`
	if err := r.db.QueryRow(ctx, countQuery, unitID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting personnel: %w", err)
	}

	return records, total, nil
}

// UpdateAssignment changes a service record's rank, unit and position
func (r *PersonnelRepository) UpdateAssignment(ctx context.Context, id uuid.UUID, rankID, unitID int64, positionID *int64) error {
	query := `
		UPDATE personnel
		SET rank_id = $2, unit_id = $3, position_id = $4
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id, rankID, unitID, positionID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPersonnelNotFound
	}

	return nil
}

// ExistsForApplication checks whether an application already produced a
// personnel record.
func (r *PersonnelRepository) ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personnel WHERE application_id = $1)`,
		applicationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking personnel existence: %w", err)
	}

	return exists, nil
}
