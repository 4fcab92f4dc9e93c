package services

import (
	"context"
	"time"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type eventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, unitID *int64, from, to *time.Time, offset, limit int) ([]*models.Event, int64, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService manages the operations calendar
type EventService struct {
	events eventStore
	units  unitStore
}

// NewEventService creates a new event service
func NewEventService(events eventStore, units unitStore) *EventService {
	return &EventService{
		events: events,
		units:  units,
	}
}

func (s *EventService) validate(ctx context.Context, req *dto.CreateEventRequest) error {
	if req.EndsAt.Before(req.StartsAt) {
		return apperrors.ErrInvalidDateRange
	}
	if req.UnitID != nil {
		if _, err := s.units.GetByID(ctx, *req.UnitID); err != nil {
			return err
		}
	}
	return nil
}

// CreateEvent schedules a new event
func (s *EventService) CreateEvent(ctx context.Context, createdBy int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		UnitID:      req.UnitID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   createdBy,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent retrieves an event
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.events.GetByID(ctx, id)
}

// ListEvents returns events inside an optional window, optionally scoped
// to a unit
func (s *EventService) ListEvents(ctx context.Context, unitID *int64, from, to *time.Time, offset, limit int) ([]*models.Event, int64, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, 0, apperrors.ErrInvalidDateRange
	}
	return s.events.List(ctx, unitID, from, to, offset, limit)
}

// UpdateEvent reschedules or retitles an event
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.CreateEventRequest) (*models.Event, error) {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		UnitID:      req.UnitID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   existing.CreatedBy,
	}
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}
