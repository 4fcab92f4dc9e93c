package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/db"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/logger"
)

type applicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	List(ctx context.Context, status *models.ApplicationStatus, offset, limit int) ([]*models.Application, int64, error)
	HasOpenApplication(ctx context.Context, applicantID int64) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.ApplicationStatus, notes *string, allowedFrom []models.ApplicationStatus) error
	MarkProcessedTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type formStore interface {
	GetByID(ctx context.Context, id int64) (*models.RecruitmentForm, error)
}

type rankStore interface {
	GetByID(ctx context.Context, id int64) (*models.Rank, error)
}

type unitStore interface {
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
}

type positionStore interface {
	positionLister
	GetByID(ctx context.Context, id int64) (*models.UnitPosition, error)
}

type personnelCreator interface {
	CreateTx(ctx context.Context, tx pgx.Tx, personnel *models.Personnel) error
	ExistsForApplication(ctx context.Context, applicationID uuid.UUID) (bool, error)
}

type rolePromoter interface {
	PromoteRoleTx(ctx context.Context, tx pgx.Tx, userID int64, role models.RoleType) error
}

type txManager interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// ApplicationService implements the candidate intake and review workflow
type ApplicationService struct {
	applications applicationStore
	forms        formStore
	ranks        rankStore
	units        unitStore
	positions    positionStore
	personnel    personnelCreator
	users        rolePromoter
	tx           txManager
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applications applicationStore,
	forms formStore,
	ranks rankStore,
	units unitStore,
	positions positionStore,
	personnel personnelCreator,
	users rolePromoter,
	tx txManager,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		forms:        forms,
		ranks:        ranks,
		units:        units,
		positions:    positions,
		personnel:    personnel,
		users:        users,
		tx:           tx,
	}
}

// SubmitApplication validates the answers against the form definition and
// creates a pending application. An applicant can only have one open
// application at a time.
func (s *ApplicationService) SubmitApplication(ctx context.Context, applicantID int64, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	form, err := s.forms.GetByID(ctx, req.FormID)
	if err != nil {
		return nil, err
	}

	fieldsByID := make(map[string]models.FormField, len(form.Fields))
	for _, field := range form.Fields {
		fieldsByID[strconv.FormatInt(field.ID, 10)] = field
	}

	for key := range req.FormData {
		if _, ok := fieldsByID[key]; !ok {
			return nil, apperrors.NewCustomError(apperrors.ErrFormFieldUnknown,
				"answer "+key+" does not match any field of this form")
		}
	}

	for key, field := range fieldsByID {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(req.FormData[key]) == "" {
			return nil, apperrors.NewCustomError(apperrors.ErrFormFieldMissing,
				"required field \""+field.Label+"\" has no answer")
		}
	}

	open, err := s.applications.HasOpenApplication(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		ApplicantID: applicantID,
		FormID:      req.FormID,
		FormData:    req.FormData,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	logger.Info().
		Str("applicationId", application.ID.String()).
		Int64("applicantId", applicantID).
		Msg("Application submitted")

	return application, nil
}

// GetApplication retrieves a single application
func (s *ApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return s.applications.GetByID(ctx, id)
}

// ListApplications retrieves applications, optionally filtered by status
func (s *ApplicationService) ListApplications(ctx context.Context, status *models.ApplicationStatus, offset, limit int) ([]*models.Application, int64, error) {
	if status != nil && !status.Valid() {
		return nil, 0, apperrors.NewValidationError("unknown application status: " + string(*status))
	}
	return s.applications.List(ctx, status, offset, limit)
}

// UpdateStatus moves an application through the review state machine.
// Reaching the processed status is reserved for ProcessCandidate.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*models.Application, error) {
	target := models.ApplicationStatus(req.Status)
	if !target.Valid() || target == models.StatusProcessed {
		return nil, apperrors.NewValidationError("unknown application status: " + req.Status)
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !application.Status.CanTransitionTo(target) {
		if application.Status.Terminal() {
			return nil, apperrors.ErrApplicationTerminal
		}
		return nil, apperrors.ErrInvalidTransition
	}

	// The guarded update re-checks the source status so a concurrent
	// reviewer cannot slip an illegal transition past the check above.
	if err := s.applications.UpdateStatus(ctx, id, target, req.Notes, models.TransitionSources(target)); err != nil {
		return nil, err
	}

	logger.Info().
		Str("applicationId", id.String()).
		Str("from", string(application.Status)).
		Str("to", string(target)).
		Msg("Application status updated")

	return s.applications.GetByID(ctx, id)
}

// ProcessCandidate commits the enlistment of an approved application: the
// application becomes processed, a service record is created and the
// applicant is promoted to member. All three happen in one transaction.
func (s *ApplicationService) ProcessCandidate(ctx context.Context, id uuid.UUID, req *dto.ProcessCandidateRequest) (*models.Personnel, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch application.Status {
	case models.StatusApproved:
	case models.StatusProcessed:
		return nil, apperrors.ErrAlreadyProcessed
	default:
		return nil, apperrors.ErrNotApproved
	}

	rank, err := s.ranks.GetByID(ctx, req.RankID)
	if err != nil {
		return nil, err
	}
	unit, err := s.units.GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	selection := NewProcessingSelection(application.ID)
	selection.SelectRank(rank.ID)
	if err := selection.SelectUnit(ctx, s.positions, unit.ID); err != nil {
		return nil, err
	}
	if req.PositionID != nil {
		if _, err := s.positions.GetByID(ctx, *req.PositionID); err != nil {
			return nil, err
		}
		if err := selection.SelectPosition(*req.PositionID); err != nil {
			return nil, err
		}
	}
	if !selection.Ready() {
		return nil, apperrors.NewValidationError("rank and unit are required to process a candidate")
	}

	exists, err := s.personnel.ExistsForApplication(ctx, application.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyProcessed
	}

	record := &models.Personnel{
		UserID:        application.ApplicantID,
		RankID:        *selection.RankID,
		UnitID:        *selection.UnitID,
		PositionID:    selection.PositionID,
		ApplicationID: &selection.ApplicationID,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.applications.MarkProcessedTx(ctx, tx, application.ID); err != nil {
			return err
		}
		if err := s.personnel.CreateTx(ctx, tx, record); err != nil {
			return err
		}
		return s.users.PromoteRoleTx(ctx, tx, application.ApplicantID, models.RoleMember)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("applicationId", application.ID.String()).
		Str("personnelId", record.ID.String()).
		Int64("userId", application.ApplicantID).
		Msg("Candidate processed")

	return record, nil
}
