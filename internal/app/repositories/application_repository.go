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
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application in pending status
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (id, applicant_id, form_id, status, form_data, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	application.Status = models.StatusPending
	application.SubmittedAt = time.Now()

	_, err := r.db.Exec(ctx, query,
		application.ID,
		application.ApplicantID,
		application.FormID,
		application.Status,
		application.FormData,
		application.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application with its applicant summary
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `
		SELECT a.id, a.applicant_id, a.form_id, a.status, a.form_data,
		       a.reviewer_notes, a.reviewed_at, a.submitted_at,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.id = $1
	`

	var application models.Application
	var applicant models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.ApplicantID,
		&application.FormID,
		&application.Status,
		&application.FormData,
		&application.ReviewerNotes,
		&application.ReviewedAt,
		&application.SubmittedAt,
		&applicant.ID,
		&applicant.Email,
		&applicant.FirstName,
		&applicant.LastName,
		&applicant.Role,
		&applicant.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	application.Applicant = &applicant
	return &application, nil
}

// List retrieves applications ordered by submission time descending,
// optionally filtered by status, with the applicant summary embedded.
func (r *ApplicationRepository) List(ctx context.Context, status *models.ApplicationStatus, offset, limit int) ([]*models.Application, int64, error) {
	query := `
		SELECT a.id, a.applicant_id, a.form_id, a.status, a.form_data,
		       a.reviewer_notes, a.reviewed_at, a.submitted_at,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url,
		       COUNT(*) OVER() AS total
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE ($1::text IS NULL OR a.status = $1)
		ORDER BY a.submitted_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	var total int64
	for rows.Next() {
		var application models.Application
		var applicant models.User
		if err := rows.Scan(
			&application.ID,
			&application.ApplicantID,
			&application.FormID,
			&application.Status,
			&application.FormData,
			&application.ReviewerNotes,
			&application.ReviewedAt,
			&application.SubmittedAt,
			&applicant.ID,
			&applicant.Email,
			&applicant.FirstName,
			&applicant.LastName,
			&applicant.Role,
			&applicant.AvatarURL,
			&total,
		); err != nil {
			return nil, 0, err
		}
		application.Applicant = &applicant
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// HasOpenApplication checks whether an applicant already has a non-terminal application
func (r *ApplicationRepository) HasOpenApplication(ctx context.Context, applicantID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE applicant_id = $1 AND status NOT IN ('rejected', 'processed'))`,
		applicantID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking open applications: %w", err)
	}

	return exists, nil
}

// UpdateStatus moves an application from one of the allowed source statuses
// to newStatus in a single guarded UPDATE. Zero rows affected means the row
// was not in an allowed source status anymore, which callers treat as a
// transition conflict.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ApplicationStatus, notes *string, allowedFrom []models.ApplicationStatus) error {
	query := `
		UPDATE applications
		SET status = $2, reviewer_notes = $3, reviewed_at = $4
		WHERE id = $1 AND status = ANY($5)
	`

	from := make([]string, 0, len(allowedFrom))
	for _, s := range allowedFrom {
		from = append(from, string(s))
	}

	cmdTag, err := r.db.Exec(ctx, query, id, newStatus, notes, time.Now(), from)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidTransition
	}

	return nil
}

// MarkProcessedTx flips an approved application to processed inside an open
// transaction. The status guard makes the terminal transition idempotent:
// a second attempt affects zero rows and fails with ErrNotApproved.
func (r *ApplicationRepository) MarkProcessedTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		UPDATE applications
		SET status = $2
		WHERE id = $1 AND status = $3
	`

	cmdTag, err := tx.Exec(ctx, query, id, models.StatusProcessed, models.StatusApproved)
	if err != nil {
		return fmt.Errorf("error marking application processed: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotApproved
	}

	return nil
}
