package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type fakePersonnelStore struct {
	records map[uuid.UUID]*models.Personnel
}

func newFakePersonnelStore() *fakePersonnelStore {
	return &fakePersonnelStore{records: make(map[uuid.UUID]*models.Personnel)}
}

func (f *fakePersonnelStore) CreateTx(_ context.Context, _ pgx.Tx, personnel *models.Personnel) error {
	personnel.ID = uuid.New()
	f.records[personnel.ID] = personnel
	return nil
}

func (f *fakePersonnelStore) GetByID(_ context.Context, id uuid.UUID) (*models.Personnel, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrPersonnelNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakePersonnelStore) GetByUserID(_ context.Context, userID int64) (*models.Personnel, error) {
	for _, record := range f.records {
		if record.UserID == userID {
			return record, nil
		}
	}
	return nil, apperrors.ErrPersonnelNotFound
}

func (f *fakePersonnelStore) List(_ context.Context, unitID *int64, _, _ int) ([]*models.Personnel, int64, error) {
	out := make([]*models.Personnel, 0)
	for _, record := range f.records {
		if unitID == nil || record.UnitID == *unitID {
			out = append(out, record)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePersonnelStore) UpdateAssignment(_ context.Context, id uuid.UUID, rankID, unitID int64, positionID *int64) error {
	record, ok := f.records[id]
	if !ok {
		return apperrors.ErrPersonnelNotFound
	}
	record.RankID = rankID
	record.UnitID = unitID
	record.PositionID = positionID
	return nil
}

type fakeAwardStore struct {
	awards map[int64]*models.Award
	grants []*models.PersonnelAward
}

func (f *fakeAwardStore) GetAll(_ context.Context) ([]*models.Award, error) {
	out := make([]*models.Award, 0, len(f.awards))
	for _, a := range f.awards {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAwardStore) GetByID(_ context.Context, id int64) (*models.Award, error) {
	award, ok := f.awards[id]
	if !ok {
		return nil, apperrors.ErrAwardNotFound
	}
	return award, nil
}

func (f *fakeAwardStore) Create(_ context.Context, award *models.Award) error {
	award.ID = int64(len(f.awards) + 1)
	f.awards[award.ID] = award
	return nil
}

func (f *fakeAwardStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.awards[id]; !ok {
		return apperrors.ErrAwardNotFound
	}
	delete(f.awards, id)
	return nil
}

func (f *fakeAwardStore) Grant(_ context.Context, grant *models.PersonnelAward) error {
	grant.ID = int64(len(f.grants) + 1)
	if grant.AwardedAt.IsZero() {
		grant.AwardedAt = time.Now()
	}
	f.grants = append(f.grants, grant)
	return nil
}

func (f *fakeAwardStore) ListForPersonnel(_ context.Context, personnelID uuid.UUID) ([]*models.PersonnelAward, error) {
	out := make([]*models.PersonnelAward, 0)
	for _, g := range f.grants {
		if g.PersonnelID == personnelID {
			out = append(out, g)
		}
	}
	return out, nil
}

type personnelFixture struct {
	service *PersonnelService
	store   *fakePersonnelStore
	awards  *fakeAwardStore
}

func newPersonnelFixture() *personnelFixture {
	store := newFakePersonnelStore()
	awards := &fakeAwardStore{awards: map[int64]*models.Award{
		1: {ID: 1, Name: "Distinguished Flying Cross"},
	}}
	ranks := &fakeRankStore{ranks: map[int64]*models.Rank{
		1: {ID: 1, Name: "Airman", Abbreviation: "Amn", SortOrder: 1},
		2: {ID: 2, Name: "Senior Airman", Abbreviation: "SrA", SortOrder: 2},
	}}
	units := &fakeUnitStore{units: map[int64]*models.Unit{
		1: {ID: 1, Name: "1st Squadron", UnitType: "squadron"},
		2: {ID: 2, Name: "2nd Squadron", UnitType: "squadron"},
	}}
	positions := &fakePositionStore{positions: map[int64]*models.UnitPosition{
		10: {ID: 10, UnitID: 1, Name: "Flight Lead", IsLeadership: true},
		20: {ID: 20, UnitID: 2, Name: "Wingman"},
	}}

	return &personnelFixture{
		service: NewPersonnelService(store, ranks, units, positions, awards),
		store:   store,
		awards:  awards,
	}
}

func (f *personnelFixture) seedRecord() *models.Personnel {
	positionID := int64(10)
	record := &models.Personnel{
		ID:         uuid.New(),
		UserID:     42,
		RankID:     1,
		UnitID:     1,
		PositionID: &positionID,
		EnlistedAt: time.Now(),
	}
	f.store.records[record.ID] = record
	return record
}

func TestUpdateAssignmentPromotesWithinUnit(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	positionID := int64(10)
	updated, err := f.service.UpdateAssignment(context.Background(), record.ID, &dto.UpdateAssignmentRequest{
		RankID:     2,
		UnitID:     1,
		PositionID: &positionID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.RankID)
	assert.Equal(t, int64(1), updated.UnitID)
	require.NotNil(t, updated.PositionID)
	assert.Equal(t, positionID, *updated.PositionID)
}

func TestUpdateAssignmentTransferDropsPosition(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	// Moving to unit 2 without naming a position leaves the slot empty
	updated, err := f.service.UpdateAssignment(context.Background(), record.ID, &dto.UpdateAssignmentRequest{
		RankID: 1,
		UnitID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.UnitID)
	assert.Nil(t, updated.PositionID)
}

func TestUpdateAssignmentRejectsForeignPosition(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	// Position 10 belongs to unit 1, the transfer targets unit 2
	positionID := int64(10)
	_, err := f.service.UpdateAssignment(context.Background(), record.ID, &dto.UpdateAssignmentRequest{
		RankID:     1,
		UnitID:     2,
		PositionID: &positionID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPositionMismatch)

	// The record is untouched after the failed update
	current, getErr := f.store.GetByID(context.Background(), record.ID)
	require.NoError(t, getErr)
	assert.Equal(t, int64(1), current.UnitID)
}

func TestUpdateAssignmentValidatesReferences(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	_, err := f.service.UpdateAssignment(context.Background(), record.ID, &dto.UpdateAssignmentRequest{RankID: 99, UnitID: 1})
	assert.ErrorIs(t, err, apperrors.ErrRankNotFound)

	_, err = f.service.UpdateAssignment(context.Background(), record.ID, &dto.UpdateAssignmentRequest{RankID: 1, UnitID: 99})
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)

	_, err = f.service.UpdateAssignment(context.Background(), uuid.New(), &dto.UpdateAssignmentRequest{RankID: 1, UnitID: 1})
	assert.ErrorIs(t, err, apperrors.ErrPersonnelNotFound)
}

func TestListPersonnelValidatesUnitFilter(t *testing.T) {
	f := newPersonnelFixture()
	f.seedRecord()

	unknown := int64(99)
	_, _, err := f.service.ListPersonnel(context.Background(), &unknown, 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)

	unitID := int64(1)
	records, total, err := f.service.ListPersonnel(context.Background(), &unitID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(1), total)
}

func TestGrantAwardAttachesDefinition(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	citation := "For conspicuous skill during Exercise Talon"
	grant, err := f.service.GrantAward(context.Background(), record.ID, &dto.GrantAwardRequest{
		AwardID:  1,
		Citation: &citation,
	})
	require.NoError(t, err)
	require.NotNil(t, grant.Award)
	assert.Equal(t, "Distinguished Flying Cross", grant.Award.Name)
	assert.False(t, grant.AwardedAt.IsZero())

	granted, err := f.service.ListPersonnelAwards(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Len(t, granted, 1)
}

func TestGrantAwardValidatesTargets(t *testing.T) {
	f := newPersonnelFixture()
	record := f.seedRecord()

	_, err := f.service.GrantAward(context.Background(), uuid.New(), &dto.GrantAwardRequest{AwardID: 1})
	assert.ErrorIs(t, err, apperrors.ErrPersonnelNotFound)

	_, err = f.service.GrantAward(context.Background(), record.ID, &dto.GrantAwardRequest{AwardID: 99})
	assert.ErrorIs(t, err, apperrors.ErrAwardNotFound)
}
