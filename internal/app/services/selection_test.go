package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

func selectionPositions() *fakePositionStore {
	return &fakePositionStore{positions: map[int64]*models.UnitPosition{
		10: {ID: 10, UnitID: 1, Name: "Flight Lead", IsLeadership: true},
		11: {ID: 11, UnitID: 1, Name: "Wingman"},
		20: {ID: 20, UnitID: 2, Name: "Wingman"},
	}}
}

func TestSelectUnitLoadsPositions(t *testing.T) {
	s := NewProcessingSelection(uuid.New())
	assert.Nil(t, s.Positions)

	require.NoError(t, s.SelectUnit(context.Background(), selectionPositions(), 1))

	require.NotNil(t, s.UnitID)
	assert.Equal(t, int64(1), *s.UnitID)
	assert.Len(t, s.Positions, 2)
}

func TestSelectUnitWithoutPositions(t *testing.T) {
	s := NewProcessingSelection(uuid.New())

	// Unit 3 defines no positions; the list must still be non-nil
	require.NoError(t, s.SelectUnit(context.Background(), selectionPositions(), 3))

	require.NotNil(t, s.Positions)
	assert.Empty(t, s.Positions)
}

func TestChangingUnitClearsPosition(t *testing.T) {
	positions := selectionPositions()
	s := NewProcessingSelection(uuid.New())

	require.NoError(t, s.SelectUnit(context.Background(), positions, 1))
	require.NoError(t, s.SelectPosition(10))
	require.NotNil(t, s.PositionID)

	require.NoError(t, s.SelectUnit(context.Background(), positions, 2))

	assert.Nil(t, s.PositionID)
	assert.Len(t, s.Positions, 1)
	assert.Equal(t, int64(20), s.Positions[0].ID)
}

func TestReselectingSameUnitClearsPosition(t *testing.T) {
	positions := selectionPositions()
	s := NewProcessingSelection(uuid.New())

	require.NoError(t, s.SelectUnit(context.Background(), positions, 1))
	require.NoError(t, s.SelectPosition(11))

	require.NoError(t, s.SelectUnit(context.Background(), positions, 1))

	assert.Nil(t, s.PositionID)
	assert.Len(t, s.Positions, 2)
}

func TestSelectPositionRequiresUnit(t *testing.T) {
	s := NewProcessingSelection(uuid.New())

	err := s.SelectPosition(10)
	assert.ErrorIs(t, err, apperrors.ErrPositionMismatch)
}

func TestSelectPositionMustBelongToUnit(t *testing.T) {
	s := NewProcessingSelection(uuid.New())
	require.NoError(t, s.SelectUnit(context.Background(), selectionPositions(), 1))

	err := s.SelectPosition(20)
	assert.ErrorIs(t, err, apperrors.ErrPositionMismatch)
	assert.Nil(t, s.PositionID)
}

func TestSelectRankKeepsUnitAndPosition(t *testing.T) {
	s := NewProcessingSelection(uuid.New())
	require.NoError(t, s.SelectUnit(context.Background(), selectionPositions(), 1))
	require.NoError(t, s.SelectPosition(10))

	s.SelectRank(3)

	require.NotNil(t, s.RankID)
	assert.Equal(t, int64(3), *s.RankID)
	assert.NotNil(t, s.UnitID)
	assert.NotNil(t, s.PositionID)
}

func TestSelectionReadiness(t *testing.T) {
	applicationID := uuid.New()
	s := NewProcessingSelection(applicationID)
	assert.Equal(t, applicationID, s.ApplicationID)
	assert.False(t, s.Ready())

	s.SelectRank(1)
	assert.False(t, s.Ready())

	require.NoError(t, s.SelectUnit(context.Background(), selectionPositions(), 1))
	assert.True(t, s.Ready(), "position is optional")

	s.ClearPosition()
	assert.True(t, s.Ready())

	// Reset drops the choices but keeps the application binding
	s.Reset()
	assert.False(t, s.Ready())
	assert.Nil(t, s.Positions)
	assert.Equal(t, applicationID, s.ApplicationID)
}
