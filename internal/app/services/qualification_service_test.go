package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type progressKey struct {
	personnelID     uuid.UUID
	qualificationID int64
}

type fakeQualificationStore struct {
	qualifications map[int64]*models.Qualification
	progress       map[progressKey]*models.PersonnelQualification
}

func (f *fakeQualificationStore) GetAll(_ context.Context) ([]*models.Qualification, error) {
	out := make([]*models.Qualification, 0, len(f.qualifications))
	for _, q := range f.qualifications {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQualificationStore) GetByID(_ context.Context, id int64) (*models.Qualification, error) {
	q, ok := f.qualifications[id]
	if !ok {
		return nil, apperrors.ErrQualificationNotFound
	}
	return q, nil
}

func (f *fakeQualificationStore) Create(_ context.Context, qualification *models.Qualification) error {
	qualification.ID = int64(len(f.qualifications) + 1)
	f.qualifications[qualification.ID] = qualification
	return nil
}

func (f *fakeQualificationStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.qualifications[id]; !ok {
		return apperrors.ErrQualificationNotFound
	}
	delete(f.qualifications, id)
	return nil
}

func (f *fakeQualificationStore) UpsertProgress(_ context.Context, personnelID uuid.UUID, qualificationID int64, progress int) (*models.PersonnelQualification, error) {
	key := progressKey{personnelID, qualificationID}
	now := time.Now()

	entry, ok := f.progress[key]
	if !ok {
		entry = &models.PersonnelQualification{
			ID:              int64(len(f.progress) + 1),
			PersonnelID:     personnelID,
			QualificationID: qualificationID,
		}
		f.progress[key] = entry
	}

	entry.Progress = progress
	entry.UpdatedAt = now
	if progress == 100 {
		if entry.AwardedAt == nil {
			entry.AwardedAt = &now
		}
	} else {
		entry.AwardedAt = nil
	}

	copied := *entry
	return &copied, nil
}

func (f *fakeQualificationStore) ListForPersonnel(_ context.Context, personnelID uuid.UUID) ([]*models.PersonnelQualification, error) {
	out := make([]*models.PersonnelQualification, 0)
	for key, entry := range f.progress {
		if key.personnelID == personnelID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func newQualificationFixture() (*QualificationService, uuid.UUID) {
	qualifications := &fakeQualificationStore{
		qualifications: map[int64]*models.Qualification{
			1: {ID: 1, Name: "BVR Combat", Category: "combat"},
		},
		progress: make(map[progressKey]*models.PersonnelQualification),
	}

	personnel := newFakePersonnelStore()
	record := &models.Personnel{ID: uuid.New(), UserID: 42, RankID: 1, UnitID: 1}
	personnel.records[record.ID] = record

	return NewQualificationService(qualifications, personnel), record.ID
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	service, personnelID := newQualificationFixture()

	for _, progress := range []int{-1, 101} {
		_, err := service.UpdateProgress(context.Background(), personnelID, &dto.UpdateProgressRequest{
			QualificationID: 1,
			Progress:        progress,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidProgress, "progress %d", progress)
	}
}

func TestUpdateProgressValidatesTargets(t *testing.T) {
	service, personnelID := newQualificationFixture()

	_, err := service.UpdateProgress(context.Background(), uuid.New(), &dto.UpdateProgressRequest{
		QualificationID: 1,
		Progress:        50,
	})
	assert.ErrorIs(t, err, apperrors.ErrPersonnelNotFound)

	_, err = service.UpdateProgress(context.Background(), personnelID, &dto.UpdateProgressRequest{
		QualificationID: 99,
		Progress:        50,
	})
	assert.ErrorIs(t, err, apperrors.ErrQualificationNotFound)
}

func TestUpdateProgressAwardsAtFull(t *testing.T) {
	service, personnelID := newQualificationFixture()

	entry, err := service.UpdateProgress(context.Background(), personnelID, &dto.UpdateProgressRequest{
		QualificationID: 1,
		Progress:        60,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, entry.Progress)
	assert.Nil(t, entry.AwardedAt)

	entry, err = service.UpdateProgress(context.Background(), personnelID, &dto.UpdateProgressRequest{
		QualificationID: 1,
		Progress:        100,
	})
	require.NoError(t, err)
	assert.NotNil(t, entry.AwardedAt)

	// Dropping below 100 revokes the award timestamp
	entry, err = service.UpdateProgress(context.Background(), personnelID, &dto.UpdateProgressRequest{
		QualificationID: 1,
		Progress:        80,
	})
	require.NoError(t, err)
	assert.Equal(t, 80, entry.Progress)
	assert.Nil(t, entry.AwardedAt)

	tracked, err := service.ListPersonnelQualifications(context.Background(), personnelID)
	require.NoError(t, err)
	assert.Len(t, tracked, 1)
}
