package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/dberrors"
)

// EventRepository handles database operations for calendar events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, unit_id, starts_at, ends_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.UnitID, event.StartsAt, event.EndsAt, event.CreatedBy).Scan(&event.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnitNotFound
		}
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event with its unit embedded when scoped
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.unit_id, e.starts_at, e.ends_at, e.created_by,
		       u.id, u.name, u.unit_type, u.callsign, u.image_url
		FROM events e
		LEFT JOIN units u ON u.id = e.unit_id
		WHERE e.id = $1
	`

	event, err := scanEventRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

func scanEventRow(row pgx.Row) (*models.Event, error) {
	var event models.Event
	var unitID *int64
	var unitName, unitType *string
	var unitCallsign, unitImage *string

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.UnitID,
		&event.StartsAt,
		&event.EndsAt,
		&event.CreatedBy,
		&unitID,
		&unitName,
		&unitType,
		&unitCallsign,
		&unitImage,
	)
	if err != nil {
		return nil, err
	}

	if unitID != nil {
		event.Unit = &models.Unit{
			ID:       *unitID,
			Name:     *unitName,
			UnitType: *unitType,
			Callsign: unitCallsign,
			ImageURL: unitImage,
		}
	}

	return &event, nil
}

// List retrieves events inside an optional time window, optionally
// filtered by unit, ordered by start time
func (r *EventRepository) List(ctx context.Context, unitID *int64, from, to *time.Time, offset, limit int) ([]*models.Event, int64, error) {
	query := `
		SELECT e.id, e.title, e.description, e.unit_id, e.starts_at, e.ends_at, e.created_by,
		       u.id, u.name, u.unit_type, u.callsign, u.image_url
		FROM events e
		LEFT JOIN units u ON u.id = e.unit_id
		WHERE ($1::bigint IS NULL OR e.unit_id = $1)
		  AND ($2::timestamptz IS NULL OR e.ends_at >= $2)
		  AND ($3::timestamptz IS NULL OR e.starts_at <= $3)
		ORDER BY e.starts_at
		OFFSET $4 LIMIT $5
	`

	rows, err := r.db.Query(ctx, query, unitID, from, to, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `
		SELECT COUNT(*) FROM events
		WHERE ($1::bigint IS NULL OR unit_id = $1)
		  AND ($2::timestamptz IS NULL OR ends_at >= $2)
		  AND ($3::timestamptz IS NULL OR starts_at <= $3)
	`
	if err := r.db.QueryRow(ctx, countQuery, unitID, from, to).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	return events, total, nil
}

// Update updates an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, unit_id = $4, starts_at = $5, ends_at = $6
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.UnitID, event.StartsAt, event.EndsAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUnitNotFound
		}
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
