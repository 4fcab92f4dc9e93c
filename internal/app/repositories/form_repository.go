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

// FormRepository handles database operations for recruitment forms
type FormRepository struct {
	db *pgxpool.Pool
}

// NewFormRepository creates a new form repository
func NewFormRepository(db *pgxpool.Pool) *FormRepository {
	return &FormRepository{
		db: db,
	}
}

// GetByID retrieves a form with its ordered field list
func (r *FormRepository) GetByID(ctx context.Context, id int64) (*models.RecruitmentForm, error) {
	query := `
		SELECT id, title, description
		FROM recruitment_forms
		WHERE id = $1
	`

	var form models.RecruitmentForm
	err := r.db.QueryRow(ctx, query, id).Scan(&form.ID, &form.Title, &form.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFormNotFound
		}
		return nil, fmt.Errorf("error retrieving form: %w", err)
	}

	fields, err := r.getFields(ctx, id)
	if err != nil {
		return nil, err
	}
	form.Fields = fields

	return &form, nil
}

// GetAll retrieves all form definitions with their fields
func (r *FormRepository) GetAll(ctx context.Context) ([]*models.RecruitmentForm, error) {
	query := `
		SELECT id, title, description
		FROM recruitment_forms
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []*models.RecruitmentForm
	for rows.Next() {
		var form models.RecruitmentForm
		if err := rows.Scan(&form.ID, &form.Title, &form.Description); err != nil {
			return nil, err
		}
		forms = append(forms, &form)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, form := range forms {
		fields, err := r.getFields(ctx, form.ID)
		if err != nil {
			return nil, err
		}
		form.Fields = fields
	}

	return forms, nil
}

func (r *FormRepository) getFields(ctx context.Context, formID int64) ([]models.FormField, error) {
	query := `
		SELECT id, form_id, label, field_type, required, sort_order, help_text
		FROM form_fields
		WHERE form_id = $1
		ORDER BY sort_order
	`

	rows, err := r.db.Query(ctx, query, formID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving form fields: %w", err)
	}
	defer rows.Close()

	var fields []models.FormField
	for rows.Next() {
		var field models.FormField
		if err := rows.Scan(
			&field.ID,
			&field.FormID,
			&field.Label,
			&field.FieldType,
			&field.Required,
			&field.SortOrder,
			&field.HelpText,
		); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fields, nil
}

// Create inserts a form definition and its fields in one transaction
func (r *FormRepository) Create(ctx context.Context, form *models.RecruitmentForm) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recruitment_forms (title, description)
		VALUES ($1, $2)
		RETURNING id`,
		form.Title, form.Description).Scan(&form.ID)
	if err != nil {
		return fmt.Errorf("error creating form: %w", err)
	}

	for i := range form.Fields {
		field := &form.Fields[i]
		field.FormID = form.ID
		field.SortOrder = i
		err = tx.QueryRow(ctx, `
			INSERT INTO form_fields (form_id, label, field_type, required, sort_order, help_text)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			field.FormID, field.Label, field.FieldType, field.Required, field.SortOrder, field.HelpText).Scan(&field.ID)
		if err != nil {
			return fmt.Errorf("error creating form field: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes a form definition that has no applications referencing it
func (r *FormRepository) Delete(ctx context.Context, id int64) error {
	var inUse bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE form_id = $1)`, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("error checking form usage: %w", err)
	}

	if inUse {
		return apperrors.NewConflictError("form has submitted applications and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM recruitment_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormNotFound
	}

	return nil
}
