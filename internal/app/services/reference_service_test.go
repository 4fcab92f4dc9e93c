package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type fakeRankCatalog struct {
	fakeRankStore
}

func (f *fakeRankCatalog) GetAll(_ context.Context) ([]*models.Rank, error) {
	out := make([]*models.Rank, 0, len(f.ranks))
	for _, r := range f.ranks {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRankCatalog) Create(_ context.Context, rank *models.Rank) error {
	rank.ID = int64(len(f.ranks) + 1)
	f.ranks[rank.ID] = rank
	return nil
}

func (f *fakeRankCatalog) Update(_ context.Context, rank *models.Rank) error {
	if _, ok := f.ranks[rank.ID]; !ok {
		return apperrors.ErrRankNotFound
	}
	f.ranks[rank.ID] = rank
	return nil
}

func (f *fakeRankCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := f.ranks[id]; !ok {
		return apperrors.ErrRankNotFound
	}
	delete(f.ranks, id)
	return nil
}

type fakeUnitCatalog struct {
	fakeUnitStore
}

func (f *fakeUnitCatalog) GetAll(_ context.Context) ([]*models.Unit, error) {
	out := make([]*models.Unit, 0, len(f.units))
	for _, u := range f.units {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUnitCatalog) Create(_ context.Context, unit *models.Unit) error {
	unit.ID = int64(len(f.units) + 1)
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeUnitCatalog) Update(_ context.Context, unit *models.Unit) error {
	if _, ok := f.units[unit.ID]; !ok {
		return apperrors.ErrUnitNotFound
	}
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeUnitCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := f.units[id]; !ok {
		return apperrors.ErrUnitNotFound
	}
	delete(f.units, id)
	return nil
}

type fakePositionCatalog struct {
	fakePositionStore
	nextID int64
}

func (f *fakePositionCatalog) Create(_ context.Context, position *models.UnitPosition) error {
	f.nextID++
	position.ID = f.nextID
	f.positions[position.ID] = position
	return nil
}

func (f *fakePositionCatalog) Update(_ context.Context, position *models.UnitPosition) error {
	if _, ok := f.positions[position.ID]; !ok {
		return apperrors.ErrPositionNotFound
	}
	f.positions[position.ID] = position
	return nil
}

func (f *fakePositionCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := f.positions[id]; !ok {
		return apperrors.ErrPositionNotFound
	}
	delete(f.positions, id)
	return nil
}

type fakeFormCatalog struct {
	fakeFormStore
}

func (f *fakeFormCatalog) GetAll(_ context.Context) ([]*models.RecruitmentForm, error) {
	out := make([]*models.RecruitmentForm, 0, len(f.forms))
	for _, form := range f.forms {
		out = append(out, form)
	}
	return out, nil
}

func (f *fakeFormCatalog) Create(_ context.Context, form *models.RecruitmentForm) error {
	form.ID = int64(len(f.forms) + 1)
	for i := range form.Fields {
		form.Fields[i].ID = form.ID*100 + int64(i)
		form.Fields[i].FormID = form.ID
	}
	f.forms[form.ID] = form
	return nil
}

func (f *fakeFormCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := f.forms[id]; !ok {
		return apperrors.ErrFormNotFound
	}
	delete(f.forms, id)
	return nil
}

func newReferenceFixture() (*ReferenceService, *fakePositionCatalog) {
	ranks := &fakeRankCatalog{fakeRankStore{ranks: map[int64]*models.Rank{
		1: {ID: 1, Name: "Airman", Abbreviation: "Amn", SortOrder: 1},
	}}}
	units := &fakeUnitCatalog{fakeUnitStore{units: map[int64]*models.Unit{
		1: {ID: 1, Name: "1st Squadron", UnitType: "squadron"},
		2: {ID: 2, Name: "2nd Squadron", UnitType: "squadron"},
	}}}
	positions := &fakePositionCatalog{
		fakePositionStore: fakePositionStore{positions: map[int64]*models.UnitPosition{
			10: {ID: 10, UnitID: 1, Name: "Flight Lead", IsLeadership: true},
		}},
		nextID: 10,
	}
	forms := &fakeFormCatalog{fakeFormStore{forms: map[int64]*models.RecruitmentForm{}}}

	return NewReferenceService(ranks, units, positions, forms), positions
}

func TestListUnitPositionsUnknownUnit(t *testing.T) {
	service, _ := newReferenceFixture()

	_, err := service.ListUnitPositions(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)
}

func TestListUnitPositionsEmptyUnit(t *testing.T) {
	service, _ := newReferenceFixture()

	// Unit 2 exists but has no positions defined
	positions, err := service.ListUnitPositions(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, positions)
	assert.Empty(t, positions)
}

func TestCreateUnitPositionValidatesUnit(t *testing.T) {
	service, _ := newReferenceFixture()

	_, err := service.CreateUnitPosition(context.Background(), 99, &dto.CreateUnitPositionRequest{Name: "Wingman"})
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)

	position, err := service.CreateUnitPosition(context.Background(), 1, &dto.CreateUnitPositionRequest{Name: "Wingman"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), position.UnitID)
	assert.NotZero(t, position.ID)
}

func TestUpdateUnitPositionKeepsUnit(t *testing.T) {
	service, positions := newReferenceFixture()

	updated, err := service.UpdateUnitPosition(context.Background(), 10, &dto.CreateUnitPositionRequest{
		Name:         "Element Lead",
		IsLeadership: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.UnitID)
	assert.Equal(t, "Element Lead", positions.positions[10].Name)
}

func TestCreateFormBuildsFields(t *testing.T) {
	service, _ := newReferenceFixture()

	form, err := service.CreateForm(context.Background(), &dto.CreateFormRequest{
		Title: "Transfer Request",
		Fields: []dto.CreateFormFieldRequest{
			{Label: "Current unit", FieldType: "text", Required: true},
			{Label: "Reason", FieldType: "textarea"},
		},
	})
	require.NoError(t, err)
	require.Len(t, form.Fields, 2)
	assert.True(t, form.Fields[0].Required)
	assert.Equal(t, form.ID, form.Fields[0].FormID)

	fetched, err := service.GetForm(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transfer Request", fetched.Title)
}
