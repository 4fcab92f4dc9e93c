package services

import (
	"context"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
)

type rankCatalog interface {
	rankStore
	GetAll(ctx context.Context) ([]*models.Rank, error)
	Create(ctx context.Context, rank *models.Rank) error
	Update(ctx context.Context, rank *models.Rank) error
	Delete(ctx context.Context, id int64) error
}

type unitCatalog interface {
	unitStore
	GetAll(ctx context.Context) ([]*models.Unit, error)
	Create(ctx context.Context, unit *models.Unit) error
	Update(ctx context.Context, unit *models.Unit) error
	Delete(ctx context.Context, id int64) error
}

type positionCatalog interface {
	positionStore
	Create(ctx context.Context, position *models.UnitPosition) error
	Update(ctx context.Context, position *models.UnitPosition) error
	Delete(ctx context.Context, id int64) error
}

type formCatalog interface {
	formStore
	GetAll(ctx context.Context) ([]*models.RecruitmentForm, error)
	Create(ctx context.Context, form *models.RecruitmentForm) error
	Delete(ctx context.Context, id int64) error
}

// ReferenceService serves the rank, unit, position and form catalogs the
// workflow draws on
type ReferenceService struct {
	ranks     rankCatalog
	units     unitCatalog
	positions positionCatalog
	forms     formCatalog
}

// NewReferenceService creates a new reference data service
func NewReferenceService(ranks rankCatalog, units unitCatalog, positions positionCatalog, forms formCatalog) *ReferenceService {
	return &ReferenceService{
		ranks:     ranks,
		units:     units,
		positions: positions,
		forms:     forms,
	}
}

// ListRanks returns all ranks in precedence order
func (s *ReferenceService) ListRanks(ctx context.Context) ([]*models.Rank, error) {
	return s.ranks.GetAll(ctx)
}

// CreateRank adds a rank definition
func (s *ReferenceService) CreateRank(ctx context.Context, req *dto.CreateRankRequest) (*models.Rank, error) {
	rank := &models.Rank{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		SortOrder:    req.SortOrder,
		ImageURL:     req.ImageURL,
	}
	if err := s.ranks.Create(ctx, rank); err != nil {
		return nil, err
	}
	return rank, nil
}

// UpdateRank replaces a rank definition
func (s *ReferenceService) UpdateRank(ctx context.Context, id int64, req *dto.CreateRankRequest) (*models.Rank, error) {
	rank := &models.Rank{
		ID:           id,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		SortOrder:    req.SortOrder,
		ImageURL:     req.ImageURL,
	}
	if err := s.ranks.Update(ctx, rank); err != nil {
		return nil, err
	}
	return rank, nil
}

// DeleteRank removes an unused rank
func (s *ReferenceService) DeleteRank(ctx context.Context, id int64) error {
	return s.ranks.Delete(ctx, id)
}

// ListUnits returns all units
func (s *ReferenceService) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	return s.units.GetAll(ctx)
}

// GetUnit retrieves a unit
func (s *ReferenceService) GetUnit(ctx context.Context, id int64) (*models.Unit, error) {
	return s.units.GetByID(ctx, id)
}

// CreateUnit adds a unit definition
func (s *ReferenceService) CreateUnit(ctx context.Context, req *dto.CreateUnitRequest) (*models.Unit, error) {
	unit := &models.Unit{
		Name:     req.Name,
		UnitType: req.UnitType,
		Callsign: req.Callsign,
		ImageURL: req.ImageURL,
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnit replaces a unit definition
func (s *ReferenceService) UpdateUnit(ctx context.Context, id int64, req *dto.CreateUnitRequest) (*models.Unit, error) {
	unit := &models.Unit{
		ID:       id,
		Name:     req.Name,
		UnitType: req.UnitType,
		Callsign: req.Callsign,
		ImageURL: req.ImageURL,
	}
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// DeleteUnit removes a unit with no assigned personnel
func (s *ReferenceService) DeleteUnit(ctx context.Context, id int64) error {
	return s.units.Delete(ctx, id)
}

// ListUnitPositions returns the positions defined for a unit. The unit
// must exist; a unit with no positions yields an empty list, not an error.
func (s *ReferenceService) ListUnitPositions(ctx context.Context, unitID int64) ([]*models.UnitPosition, error) {
	if _, err := s.units.GetByID(ctx, unitID); err != nil {
		return nil, err
	}
	return s.positions.GetByUnitID(ctx, unitID)
}

// CreateUnitPosition adds a position to a unit
func (s *ReferenceService) CreateUnitPosition(ctx context.Context, unitID int64, req *dto.CreateUnitPositionRequest) (*models.UnitPosition, error) {
	if _, err := s.units.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	position := &models.UnitPosition{
		UnitID:       unitID,
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
		IsLeadership: req.IsLeadership,
	}
	if err := s.positions.Create(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// UpdateUnitPosition replaces a position definition. The position keeps
// its unit; moving positions between units is not supported.
func (s *ReferenceService) UpdateUnitPosition(ctx context.Context, id int64, req *dto.CreateUnitPositionRequest) (*models.UnitPosition, error) {
	existing, err := s.positions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	position := &models.UnitPosition{
		ID:           id,
		UnitID:       existing.UnitID,
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
		IsLeadership: req.IsLeadership,
	}
	if err := s.positions.Update(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// DeleteUnitPosition removes a position
func (s *ReferenceService) DeleteUnitPosition(ctx context.Context, id int64) error {
	return s.positions.Delete(ctx, id)
}

// ListForms returns all recruitment form definitions
func (s *ReferenceService) ListForms(ctx context.Context) ([]*models.RecruitmentForm, error) {
	return s.forms.GetAll(ctx)
}

// GetForm retrieves a form with its fields
func (s *ReferenceService) GetForm(ctx context.Context, id int64) (*models.RecruitmentForm, error) {
	return s.forms.GetByID(ctx, id)
}

// CreateForm adds a recruitment form with its ordered fields
func (s *ReferenceService) CreateForm(ctx context.Context, req *dto.CreateFormRequest) (*models.RecruitmentForm, error) {
	form := &models.RecruitmentForm{
		Title:       req.Title,
		Description: req.Description,
		Fields:      make([]models.FormField, 0, len(req.Fields)),
	}
	for _, f := range req.Fields {
		form.Fields = append(form.Fields, models.FormField{
			Label:     f.Label,
			FieldType: f.FieldType,
			Required:  f.Required,
			HelpText:  f.HelpText,
		})
	}

	if err := s.forms.Create(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// DeleteForm removes a form no application references
func (s *ReferenceService) DeleteForm(ctx context.Context, id int64) error {
	return s.forms.Delete(ctx, id)
}
