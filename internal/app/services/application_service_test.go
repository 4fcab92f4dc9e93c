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
	"github.com/ravenlog/ravenlog/internal/db"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

// --- in-memory fakes ---

type fakeApplicationStore struct {
	apps    map[uuid.UUID]*models.Application
	hasOpen bool
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]*models.Application)}
}

func (f *fakeApplicationStore) Create(_ context.Context, application *models.Application) error {
	application.ID = uuid.New()
	application.Status = models.StatusPending
	application.SubmittedAt = time.Now()
	f.apps[application.ID] = application
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	application, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationStore) List(_ context.Context, status *models.ApplicationStatus, _, _ int) ([]*models.Application, int64, error) {
	var out []*models.Application
	for _, a := range f.apps {
		if status == nil || a.Status == *status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationStore) HasOpenApplication(_ context.Context, _ int64) (bool, error) {
	return f.hasOpen, nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, id uuid.UUID, newStatus models.ApplicationStatus, notes *string, allowedFrom []models.ApplicationStatus) error {
	application, ok := f.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	matched := false
	for _, from := range allowedFrom {
		if application.Status == from {
			matched = true
			break
		}
	}
	if !matched {
		return apperrors.ErrInvalidTransition
	}
	application.Status = newStatus
	application.ReviewerNotes = notes
	now := time.Now()
	application.ReviewedAt = &now
	return nil
}

func (f *fakeApplicationStore) MarkProcessedTx(_ context.Context, _ pgx.Tx, id uuid.UUID) error {
	application, ok := f.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	if application.Status != models.StatusApproved {
		return apperrors.ErrNotApproved
	}
	application.Status = models.StatusProcessed
	return nil
}

type fakeFormStore struct {
	forms map[int64]*models.RecruitmentForm
}

func (f *fakeFormStore) GetByID(_ context.Context, id int64) (*models.RecruitmentForm, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, apperrors.ErrFormNotFound
	}
	return form, nil
}

type fakeRankStore struct {
	ranks map[int64]*models.Rank
}

func (f *fakeRankStore) GetByID(_ context.Context, id int64) (*models.Rank, error) {
	rank, ok := f.ranks[id]
	if !ok {
		return nil, apperrors.ErrRankNotFound
	}
	return rank, nil
}

type fakeUnitStore struct {
	units map[int64]*models.Unit
}

func (f *fakeUnitStore) GetByID(_ context.Context, id int64) (*models.Unit, error) {
	unit, ok := f.units[id]
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}
	return unit, nil
}

type fakePositionStore struct {
	positions map[int64]*models.UnitPosition
}

func (f *fakePositionStore) GetByID(_ context.Context, id int64) (*models.UnitPosition, error) {
	position, ok := f.positions[id]
	if !ok {
		return nil, apperrors.ErrPositionNotFound
	}
	return position, nil
}

func (f *fakePositionStore) GetByUnitID(_ context.Context, unitID int64) ([]*models.UnitPosition, error) {
	out := make([]*models.UnitPosition, 0)
	for _, p := range f.positions {
		if p.UnitID == unitID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePersonnelCreator struct {
	created   []*models.Personnel
	exists    bool
	createErr error
}

func (f *fakePersonnelCreator) CreateTx(_ context.Context, _ pgx.Tx, personnel *models.Personnel) error {
	if f.createErr != nil {
		return f.createErr
	}
	personnel.ID = uuid.New()
	personnel.EnlistedAt = time.Now()
	f.created = append(f.created, personnel)
	return nil
}

func (f *fakePersonnelCreator) ExistsForApplication(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.exists, nil
}

type fakeRolePromoter struct {
	promoted map[int64]models.RoleType
}

func (f *fakeRolePromoter) PromoteRoleTx(_ context.Context, _ pgx.Tx, userID int64, role models.RoleType) error {
	if f.promoted == nil {
		f.promoted = make(map[int64]models.RoleType)
	}
	f.promoted[userID] = role
	return nil
}

// fakeTxManager mirrors rollback semantics: when fn fails, the stores are
// restored to their state before the transaction ran.
type fakeTxManager struct {
	applications *fakeApplicationStore
	personnel    *fakePersonnelCreator
}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	snapshot := make(map[uuid.UUID]*models.Application, len(f.applications.apps))
	for id, application := range f.applications.apps {
		copied := *application
		snapshot[id] = &copied
	}
	created := len(f.personnel.created)

	if err := fn(ctx, nil); err != nil {
		f.applications.apps = snapshot
		f.personnel.created = f.personnel.created[:created]
		return err
	}
	return nil
}

// --- fixture ---

type workflowFixture struct {
	service      *ApplicationService
	applications *fakeApplicationStore
	personnel    *fakePersonnelCreator
	users        *fakeRolePromoter
}

func newWorkflowFixture() *workflowFixture {
	applications := newFakeApplicationStore()
	personnel := &fakePersonnelCreator{}
	users := &fakeRolePromoter{}

	help := "Tell us why you want to fly with us"
	forms := &fakeFormStore{forms: map[int64]*models.RecruitmentForm{
		1: {
			ID:    1,
			Title: "Standard Application",
			Fields: []models.FormField{
				{ID: 101, FormID: 1, Label: "Motivation", FieldType: "textarea", Required: true, HelpText: &help},
				{ID: 102, FormID: 1, Label: "Previous experience", FieldType: "textarea"},
			},
		},
	}}
	ranks := &fakeRankStore{ranks: map[int64]*models.Rank{
		1: {ID: 1, Name: "Airman", Abbreviation: "Amn", SortOrder: 1},
	}}
	units := &fakeUnitStore{units: map[int64]*models.Unit{
		1: {ID: 1, Name: "1st Squadron", UnitType: "squadron"},
		2: {ID: 2, Name: "2nd Squadron", UnitType: "squadron"},
	}}
	positions := &fakePositionStore{positions: map[int64]*models.UnitPosition{
		10: {ID: 10, UnitID: 1, Name: "Flight Lead", IsLeadership: true},
		11: {ID: 11, UnitID: 1, Name: "Wingman"},
		20: {ID: 20, UnitID: 2, Name: "Wingman"},
	}}

	tx := &fakeTxManager{applications: applications, personnel: personnel}

	return &workflowFixture{
		service:      NewApplicationService(applications, forms, ranks, units, positions, personnel, users, tx),
		applications: applications,
		personnel:    personnel,
		users:        users,
	}
}

func (f *workflowFixture) seedApplication(status models.ApplicationStatus) *models.Application {
	application := &models.Application{
		ID:          uuid.New(),
		ApplicantID: 42,
		FormID:      1,
		Status:      status,
		FormData:    map[string]string{"101": "I want to fly"},
		SubmittedAt: time.Now(),
	}
	f.applications.apps[application.ID] = application
	return application
}

// --- submission ---

func TestSubmitApplicationCreatesPending(t *testing.T) {
	f := newWorkflowFixture()

	application, err := f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   1,
		FormData: map[string]string{"101": "I want to fly", "102": "Two years of sim racing"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, application.Status)
	assert.Equal(t, int64(42), application.ApplicantID)
	assert.NotEqual(t, uuid.Nil, application.ID)
}

func TestSubmitApplicationRejectsUnknownAnswer(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   1,
		FormData: map[string]string{"101": "I want to fly", "999": "stray answer"},
	})
	assert.ErrorIs(t, err, apperrors.ErrFormFieldUnknown)
}

func TestSubmitApplicationRequiresMandatoryFields(t *testing.T) {
	f := newWorkflowFixture()

	// Answer present but blank counts as missing
	_, err := f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   1,
		FormData: map[string]string{"101": "   "},
	})
	assert.ErrorIs(t, err, apperrors.ErrFormFieldMissing)

	_, err = f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   1,
		FormData: map[string]string{"102": "optional only"},
	})
	assert.ErrorIs(t, err, apperrors.ErrFormFieldMissing)
}

func TestSubmitApplicationRejectsSecondOpenApplication(t *testing.T) {
	f := newWorkflowFixture()
	f.applications.hasOpen = true

	_, err := f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   1,
		FormData: map[string]string{"101": "I want to fly"},
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestSubmitApplicationUnknownForm(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.service.SubmitApplication(context.Background(), 42, &dto.SubmitApplicationRequest{
		FormID:   99,
		FormData: map[string]string{},
	})
	assert.ErrorIs(t, err, apperrors.ErrFormNotFound)
}

// --- review transitions ---

func TestUpdateStatusFollowsReviewFlow(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusPending)

	updated, err := f.service.UpdateStatus(context.Background(), application.ID, &dto.UpdateStatusRequest{Status: "in_review"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInReview, updated.Status)

	updated, err = f.service.UpdateStatus(context.Background(), application.ID, &dto.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestUpdateStatusStoresReviewerNotes(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusInReview)

	notes := "Strong candidate, good comms"
	updated, err := f.service.UpdateStatus(context.Background(), application.ID, &dto.UpdateStatusRequest{
		Status: "approved",
		Notes:  &notes,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ReviewerNotes)
	assert.Equal(t, notes, *updated.ReviewerNotes)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusInReview)

	_, err := f.service.UpdateStatus(context.Background(), application.ID, &dto.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// State unchanged after the failed attempt
	current, getErr := f.applications.GetByID(context.Background(), application.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusInReview, current.Status)
}

func TestUpdateStatusRejectsTerminalStates(t *testing.T) {
	f := newWorkflowFixture()

	rejected := f.seedApplication(models.StatusRejected)
	_, err := f.service.UpdateStatus(context.Background(), rejected.ID, &dto.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, apperrors.ErrApplicationTerminal)

	processed := f.seedApplication(models.StatusProcessed)
	_, err = f.service.UpdateStatus(context.Background(), processed.ID, &dto.UpdateStatusRequest{Status: "in_review"})
	assert.ErrorIs(t, err, apperrors.ErrApplicationTerminal)
}

func TestUpdateStatusCannotReachProcessedDirectly(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	_, err := f.service.UpdateStatus(context.Background(), application.ID, &dto.UpdateStatusRequest{Status: "processed"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

// --- candidate processing ---

func TestProcessCandidateEnlistsApprovedApplicant(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	record, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), record.UserID)
	assert.Equal(t, int64(1), record.RankID)
	assert.Equal(t, int64(1), record.UnitID)
	assert.Nil(t, record.PositionID)
	require.NotNil(t, record.ApplicationID)
	assert.Equal(t, application.ID, *record.ApplicationID)

	current, err := f.applications.GetByID(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessed, current.Status)

	assert.Equal(t, models.RoleMember, f.users.promoted[42])
}

func TestProcessCandidateWithPosition(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	positionID := int64(10)
	record, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID:     1,
		UnitID:     1,
		PositionID: &positionID,
	})
	require.NoError(t, err)
	require.NotNil(t, record.PositionID)
	assert.Equal(t, positionID, *record.PositionID)
}

func TestProcessCandidateRejectsForeignPosition(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	// Position 20 belongs to unit 2, not unit 1
	positionID := int64(20)
	_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID:     1,
		UnitID:     1,
		PositionID: &positionID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPositionMismatch)

	// Nothing was enlisted and the application is untouched
	assert.Empty(t, f.personnel.created)
	current, getErr := f.applications.GetByID(context.Background(), application.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusApproved, current.Status)
}

func TestProcessCandidateRequiresApproval(t *testing.T) {
	f := newWorkflowFixture()

	for _, status := range []models.ApplicationStatus{models.StatusPending, models.StatusInReview, models.StatusRejected} {
		application := f.seedApplication(status)
		_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
			RankID: 1,
			UnitID: 1,
		})
		assert.ErrorIs(t, err, apperrors.ErrNotApproved, "status %s", status)
	}
}

func TestProcessCandidateIsNotRepeatable(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 1,
	})
	require.NoError(t, err)

	_, err = f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
	assert.Len(t, f.personnel.created, 1)
}

func TestProcessCandidateDetectsExistingRecord(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)
	f.personnel.exists = true

	_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
}

func TestProcessCandidateValidatesReferences(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)

	_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 99,
		UnitID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrRankNotFound)

	_, err = f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 99,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnitNotFound)

	positionID := int64(99)
	_, err = f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID:     1,
		UnitID:     1,
		PositionID: &positionID,
	})
	assert.ErrorIs(t, err, apperrors.ErrPositionNotFound)
}

func TestProcessCandidateFailedEnlistmentDoesNotPromote(t *testing.T) {
	f := newWorkflowFixture()
	application := f.seedApplication(models.StatusApproved)
	f.personnel.createErr = apperrors.ErrPersonnelExists

	_, err := f.service.ProcessCandidate(context.Background(), application.ID, &dto.ProcessCandidateRequest{
		RankID: 1,
		UnitID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrPersonnelExists)
	assert.Empty(t, f.users.promoted)

	// The rolled-back application still reads approved, so processing
	// can be retried once the cause is resolved
	current, getErr := f.applications.GetByID(context.Background(), application.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusApproved, current.Status)
}
