package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/logger"
)

type personnelStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, personnel *models.Personnel) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Personnel, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Personnel, error)
	List(ctx context.Context, unitID *int64, offset, limit int) ([]*models.Personnel, int64, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, rankID, unitID int64, positionID *int64) error
}

type awardStore interface {
	GetAll(ctx context.Context) ([]*models.Award, error)
	GetByID(ctx context.Context, id int64) (*models.Award, error)
	Create(ctx context.Context, award *models.Award) error
	Delete(ctx context.Context, id int64) error
	Grant(ctx context.Context, grant *models.PersonnelAward) error
	ListForPersonnel(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelAward, error)
}

// PersonnelService manages service records and decorations
type PersonnelService struct {
	personnel personnelStore
	ranks     rankStore
	units     unitStore
	positions positionStore
	awards    awardStore
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(personnel personnelStore, ranks rankStore, units unitStore, positions positionStore, awards awardStore) *PersonnelService {
	return &PersonnelService{
		personnel: personnel,
		ranks:     ranks,
		units:     units,
		positions: positions,
		awards:    awards,
	}
}

// ListPersonnel returns service records, optionally filtered by unit
func (s *PersonnelService) ListPersonnel(ctx context.Context, unitID *int64, offset, limit int) ([]*models.Personnel, int64, error) {
	if unitID != nil {
		if _, err := s.units.GetByID(ctx, *unitID); err != nil {
			return nil, 0, err
		}
	}
	return s.personnel.List(ctx, unitID, offset, limit)
}

// GetPersonnel retrieves one service record
func (s *PersonnelService) GetPersonnel(ctx context.Context, id uuid.UUID) (*models.Personnel, error) {
	return s.personnel.GetByID(ctx, id)
}

// GetPersonnelByUser retrieves the service record belonging to a user
func (s *PersonnelService) GetPersonnelByUser(ctx context.Context, userID int64) (*models.Personnel, error) {
	return s.personnel.GetByUserID(ctx, userID)
}

// UpdateAssignment changes a service record's rank, unit and position.
// The same unit/position consistency rule as candidate processing applies:
// a position must belong to the assigned unit.
func (s *PersonnelService) UpdateAssignment(ctx context.Context, id uuid.UUID, req *dto.UpdateAssignmentRequest) (*models.Personnel, error) {
	if _, err := s.personnel.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err := s.ranks.GetByID(ctx, req.RankID); err != nil {
		return nil, err
	}
	if _, err := s.units.GetByID(ctx, req.UnitID); err != nil {
		return nil, err
	}

	selection := NewProcessingSelection(uuid.Nil)
	selection.SelectRank(req.RankID)
	if err := selection.SelectUnit(ctx, s.positions, req.UnitID); err != nil {
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

	if err := s.personnel.UpdateAssignment(ctx, id, req.RankID, req.UnitID, selection.PositionID); err != nil {
		return nil, err
	}

	logger.Info().
		Str("personnelId", id.String()).
		Int64("rankId", req.RankID).
		Int64("unitId", req.UnitID).
		Msg("Assignment updated")

	return s.personnel.GetByID(ctx, id)
}

// ListAwards returns the award catalog
func (s *PersonnelService) ListAwards(ctx context.Context) ([]*models.Award, error) {
	return s.awards.GetAll(ctx)
}

// CreateAward adds an award definition
func (s *PersonnelService) CreateAward(ctx context.Context, req *dto.CreateAwardRequest) (*models.Award, error) {
	award := &models.Award{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.awards.Create(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// DeleteAward removes an award that was never granted
func (s *PersonnelService) DeleteAward(ctx context.Context, id int64) error {
	return s.awards.Delete(ctx, id)
}

// GrantAward attaches an award to a service record
func (s *PersonnelService) GrantAward(ctx context.Context, personnelID uuid.UUID, req *dto.GrantAwardRequest) (*models.PersonnelAward, error) {
	if _, err := s.personnel.GetByID(ctx, personnelID); err != nil {
		return nil, err
	}
	award, err := s.awards.GetByID(ctx, req.AwardID)
	if err != nil {
		return nil, err
	}

	grant := &models.PersonnelAward{
		PersonnelID: personnelID,
		AwardID:     award.ID,
		Citation:    req.Citation,
	}
	if err := s.awards.Grant(ctx, grant); err != nil {
		return nil, err
	}
	grant.Award = award

	logger.Info().
		Str("personnelId", personnelID.String()).
		Int64("awardId", award.ID).
		Msg("Award granted")

	return grant, nil
}

// ListPersonnelAwards returns the awards granted to a service record
func (s *PersonnelService) ListPersonnelAwards(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelAward, error) {
	if _, err := s.personnel.GetByID(ctx, personnelID); err != nil {
		return nil, err
	}
	return s.awards.ListForPersonnel(ctx, personnelID)
}
