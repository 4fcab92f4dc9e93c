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

// QualificationRepository handles database operations for qualifications
// and per-personnel training progress
type QualificationRepository struct {
	db *pgxpool.Pool
}

// NewQualificationRepository creates a new qualification repository
func NewQualificationRepository(db *pgxpool.Pool) *QualificationRepository {
	return &QualificationRepository{
		db: db,
	}
}

// GetAll retrieves the qualification catalog grouped by category
func (r *QualificationRepository) GetAll(ctx context.Context) ([]*models.Qualification, error) {
	query := `
		SELECT id, name, category, description
		FROM qualifications
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var qualifications []*models.Qualification
	for rows.Next() {
		var qualification models.Qualification
		if err := rows.Scan(
			&qualification.ID,
			&qualification.Name,
			&qualification.Category,
			&qualification.Description,
		); err != nil {
			return nil, err
		}
		qualifications = append(qualifications, &qualification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return qualifications, nil
}

// GetByID retrieves a qualification by ID
func (r *QualificationRepository) GetByID(ctx context.Context, id int64) (*models.Qualification, error) {
	query := `
		SELECT id, name, category, description
		FROM qualifications
		WHERE id = $1
	`

	var qualification models.Qualification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&qualification.ID,
		&qualification.Name,
		&qualification.Category,
		&qualification.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQualificationNotFound
		}
		return nil, fmt.Errorf("error retrieving qualification: %w", err)
	}

	return &qualification, nil
}

// Create inserts a new qualification into the catalog
func (r *QualificationRepository) Create(ctx context.Context, qualification *models.Qualification) error {
	query := `
		INSERT INTO qualifications (name, category, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		qualification.Name, qualification.Category, qualification.Description).Scan(&qualification.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "qualifications_name_key") {
			return apperrors.NewConflictError("a qualification with this name already exists")
		}
		return fmt.Errorf("error creating qualification: %w", err)
	}

	return nil
}

// Delete removes a qualification nobody is tracked against
func (r *QualificationRepository) Delete(ctx context.Context, id int64) error {
	var inUse bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personnel_qualifications WHERE qualification_id = $1)`, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("error checking qualification usage: %w", err)
	}

	if inUse {
		return apperrors.NewConflictError("qualification has tracked progress and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM qualifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting qualification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQualificationNotFound
	}

	return nil
}

// UpsertProgress creates or updates a personnel's progress on a
// qualification. Reaching 100 stamps awarded_at once; dropping below
// clears it.
func (r *QualificationRepository) UpsertProgress(ctx context.Context, personnelID uuid.UUID, qualificationID int64, progress int) (*models.PersonnelQualification, error) {
	query := `
		INSERT INTO personnel_qualifications (personnel_id, qualification_id, progress, awarded_at, updated_at)
		VALUES ($1, $2, $3, CASE WHEN $3 = 100 THEN $4 END, $4)
		ON CONFLICT (personnel_id, qualification_id) DO UPDATE
		SET progress = EXCLUDED.progress,
		    awarded_at = CASE
		        WHEN EXCLUDED.progress = 100 THEN COALESCE(personnel_qualifications.awarded_at, EXCLUDED.updated_at)
		        ELSE NULL
		    END,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, personnel_id, qualification_id, progress, awarded_at, updated_at
	`

	var pq models.PersonnelQualification
	err := r.db.QueryRow(ctx, query, personnelID, qualificationID, progress, time.Now()).Scan(
		&pq.ID,
		&pq.PersonnelID,
		&pq.QualificationID,
		&pq.Progress,
		&pq.AwardedAt,
		&pq.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrQualificationNotFound
		}
		return nil, fmt.Errorf("error upserting qualification progress: %w", err)
	}

	return &pq, nil
}

// ListForPersonnel retrieves a service record's tracked qualifications
// with the catalog entry embedded
func (r *QualificationRepository) ListForPersonnel(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelQualification, error) {
	query := `
		SELECT pq.id, pq.personnel_id, pq.qualification_id, pq.progress, pq.awarded_at, pq.updated_at,
		       q.id, q.name, q.category, q.description
		FROM personnel_qualifications pq
		JOIN qualifications q ON q.id = pq.qualification_id
		WHERE pq.personnel_id = $1
		ORDER BY q.category, q.name
	`

	rows, err := r.db.Query(ctx, query, personnelID)
	if err != nil {
		return nil, fmt.Errorf("error listing personnel qualifications: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.PersonnelQualification, 0)
	for rows.Next() {
		var pq models.PersonnelQualification
		var qualification models.Qualification
		if err := rows.Scan(
			&pq.ID,
			&pq.PersonnelID,
			&pq.QualificationID,
			&pq.Progress,
			&pq.AwardedAt,
			&pq.UpdatedAt,
			&qualification.ID,
			&qualification.Name,
			&qualification.Category,
			&qualification.Description,
		); err != nil {
			return nil, err
		}
		pq.Qualification = &qualification
		entries = append(entries, &pq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
