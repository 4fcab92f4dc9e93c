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

// AwardRepository handles database operations for awards and decorations
type AwardRepository struct {
	db *pgxpool.Pool
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{
		db: db,
	}
}

// GetAll retrieves the award catalog ordered by name
func (r *AwardRepository) GetAll(ctx context.Context) ([]*models.Award, error) {
	query := `
		SELECT id, name, description, image_url
		FROM awards
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var awards []*models.Award
	for rows.Next() {
		var award models.Award
		if err := rows.Scan(&award.ID, &award.Name, &award.Description, &award.ImageURL); err != nil {
			return nil, err
		}
		awards = append(awards, &award)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}

// GetByID retrieves an award by ID
func (r *AwardRepository) GetByID(ctx context.Context, id int64) (*models.Award, error) {
	query := `
		SELECT id, name, description, image_url
		FROM awards
		WHERE id = $1
	`

	var award models.Award
	err := r.db.QueryRow(ctx, query, id).Scan(&award.ID, &award.Name, &award.Description, &award.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAwardNotFound
		}
		return nil, fmt.Errorf("error retrieving award: %w", err)
	}

	return &award, nil
}

// Create inserts a new award into the catalog
func (r *AwardRepository) Create(ctx context.Context, award *models.Award) error {
	query := `
		INSERT INTO awards (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, award.Name, award.Description, award.ImageURL).Scan(&award.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "awards_name_key") {
			return apperrors.NewConflictError("an award with this name already exists")
		}
		return fmt.Errorf("error creating award: %w", err)
	}

	return nil
}

// Delete removes an award that has never been granted
func (r *AwardRepository) Delete(ctx context.Context, id int64) error {
	var granted bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personnel_awards WHERE award_id = $1)`, id).Scan(&granted)
	if err != nil {
		return fmt.Errorf("error checking award usage: %w", err)
	}

	if granted {
		return apperrors.NewConflictError("award has been granted and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting award: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAwardNotFound
	}

	return nil
}

// Grant records an award on a service record
func (r *AwardRepository) Grant(ctx context.Context, grant *models.PersonnelAward) error {
	query := `
		INSERT INTO personnel_awards (personnel_id, award_id, citation, awarded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if grant.AwardedAt.IsZero() {
		grant.AwardedAt = time.Now()
	}

	err := r.db.QueryRow(ctx, query,
		grant.PersonnelID, grant.AwardID, grant.Citation, grant.AwardedAt).Scan(&grant.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAwardNotFound
		}
		return fmt.Errorf("error granting award: %w", err)
	}

	return nil
}

// ListForPersonnel retrieves all awards granted to a service record,
// newest first
func (r *AwardRepository) ListForPersonnel(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelAward, error) {
	query := `
		SELECT pa.id, pa.personnel_id, pa.award_id, pa.citation, pa.awarded_at,
		       a.id, a.name, a.description, a.image_url
		FROM personnel_awards pa
		JOIN awards a ON a.id = pa.award_id
		WHERE pa.personnel_id = $1
		ORDER BY pa.awarded_at DESC
	`

	rows, err := r.db.Query(ctx, query, personnelID)
	if err != nil {
		return nil, fmt.Errorf("error listing personnel awards: %w", err)
	}
	defer rows.Close()

	grants := make([]*models.PersonnelAward, 0)
	for rows.Next() {
		var grant models.PersonnelAward
		var award models.Award
		if err := rows.Scan(
			&grant.ID,
			&grant.PersonnelID,
			&grant.AwardID,
			&grant.Citation,
			&grant.AwardedAt,
			&award.ID,
			&award.Name,
			&award.Description,
			&award.ImageURL,
		); err != nil {
			return nil, err
		}
		grant.Award = &award
		grants = append(grants, &grant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grants, nil
}
