package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events map[int64]*models.Event
	nextID int64
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventStore) List(_ context.Context, unitID *int64, from, to *time.Time, _, _ int) ([]*models.Event, int64, error) {
	out := make([]*models.Event, 0)
	for _, e := range f.events {
		if unitID != nil && (e.UnitID == nil || *e.UnitID != *unitID) {
			continue
		}
		if from != nil && e.EndsAt.Before(*from) {
			continue
		}
		if to != nil && e.StartsAt.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventStore) Update(_ context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func newEventFixture() (*EventService, *fakeEventStore) {
	events := &fakeEventStore{events: make(map[int64]*models.Event)}
	units := &fakeUnitStore{units: map[int64]*models.Unit{
		1: {ID: 1, Name: "1st Squadron", UnitType: "squadron"},
	}}
	return NewEventService(events, units), events
}

func TestCreateEventRejectsInvertedRange(t *testing.T) {
	service, events := newEventFixture()
	start := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

	_, err := service.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{
		Title:    "Night sortie",
		StartsAt: start,
		EndsAt:   start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	assert.Empty(t, events.events)
}

func TestCreateEventValidatesUnit(t *testing.T) {
	service, _ := newEventFixture()
	start := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	unitID := int64(99)

	_, err := service.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{
		Title:    "Night sortie",
		UnitID:   &unitID,
		StartsAt: start,
		EndsAt:   start.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)
}

func TestCreateEventRecordsCreator(t *testing.T) {
	service, _ := newEventFixture()
	start := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	unitID := int64(1)

	event, err := service.CreateEvent(context.Background(), 7, &dto.CreateEventRequest{
		Title:    "Night sortie",
		UnitID:   &unitID,
		StartsAt: start,
		EndsAt:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), event.CreatedBy)
	assert.NotZero(t, event.ID)

	// A zero-length event is allowed
	_, err = service.CreateEvent(context.Background(), 7, &dto.CreateEventRequest{
		Title:    "Briefing",
		StartsAt: start,
		EndsAt:   start,
	})
	assert.NoError(t, err)
}

func TestListEventsRejectsInvertedWindow(t *testing.T) {
	service, _ := newEventFixture()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-24 * time.Hour)

	_, _, err := service.ListEvents(context.Background(), nil, &from, &to, 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestUpdateEventKeepsCreator(t *testing.T) {
	service, events := newEventFixture()
	start := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

	created, err := service.CreateEvent(context.Background(), 7, &dto.CreateEventRequest{
		Title:    "Night sortie",
		StartsAt: start,
		EndsAt:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	updated, err := service.UpdateEvent(context.Background(), created.ID, &dto.CreateEventRequest{
		Title:    "Night sortie (rescheduled)",
		StartsAt: start.Add(24 * time.Hour),
		EndsAt:   start.Add(26 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.CreatedBy)
	assert.Equal(t, "Night sortie (rescheduled)", events.events[created.ID].Title)

	_, err = service.UpdateEvent(context.Background(), created.ID, &dto.CreateEventRequest{
		Title:    "Bad reschedule",
		StartsAt: start,
		EndsAt:   start.Add(-time.Minute),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}
