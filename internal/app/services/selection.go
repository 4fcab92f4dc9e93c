package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type positionLister interface {
	GetByUnitID(ctx context.Context, unitID int64) ([]*models.UnitPosition, error)
}

// ProcessingSelection accumulates the enlistment choices for one approved
// application. Position depends on unit: switching units reloads the
// candidate position list and discards any previously chosen position.
type ProcessingSelection struct {
	ApplicationID uuid.UUID
	RankID        *int64
	UnitID        *int64
	PositionID    *int64

	// Positions is nil until a unit has been selected and an empty,
	// non-nil slice when the selected unit defines none.
	Positions []*models.UnitPosition
}

// NewProcessingSelection starts an empty selection for an application
func NewProcessingSelection(applicationID uuid.UUID) *ProcessingSelection {
	return &ProcessingSelection{ApplicationID: applicationID}
}

// SelectRank records the rank choice. Rank is independent of unit and
// position and never resets them.
func (s *ProcessingSelection) SelectRank(rankID int64) {
	s.RankID = &rankID
}

// SelectUnit records the unit choice and loads the positions defined for
// it. Any previously selected position is cleared, even when re-selecting
// the same unit, because the candidate list is rebuilt from scratch.
func (s *ProcessingSelection) SelectUnit(ctx context.Context, positions positionLister, unitID int64) error {
	loaded, err := positions.GetByUnitID(ctx, unitID)
	if err != nil {
		return err
	}

	s.UnitID = &unitID
	s.PositionID = nil
	s.Positions = loaded
	return nil
}

// SelectPosition records the position choice. The position must be one of
// the candidates loaded for the currently selected unit.
func (s *ProcessingSelection) SelectPosition(positionID int64) error {
	if s.UnitID == nil {
		return apperrors.ErrPositionMismatch
	}

	for _, p := range s.Positions {
		if p.ID == positionID {
			s.PositionID = &positionID
			return nil
		}
	}
	return apperrors.ErrPositionMismatch
}

// ClearPosition drops the position choice without touching the unit
func (s *ProcessingSelection) ClearPosition() {
	s.PositionID = nil
}

// Ready reports whether the selection can be committed. Rank and unit are
// mandatory, position is optional.
func (s *ProcessingSelection) Ready() bool {
	return s.RankID != nil && s.UnitID != nil
}

// Reset returns the selection to its initial empty state
func (s *ProcessingSelection) Reset() {
	s.RankID = nil
	s.UnitID = nil
	s.PositionID = nil
	s.Positions = nil
}
