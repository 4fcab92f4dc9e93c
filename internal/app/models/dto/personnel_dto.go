package dto

// UpdateAssignmentRequest changes a service record's rank, unit or position.
// Position, when present, must belong to the (possibly new) unit.
type UpdateAssignmentRequest struct {
	RankID     int64  `json:"rankId" binding:"required"`
	UnitID     int64  `json:"unitId" binding:"required"`
	PositionID *int64 `json:"positionId,omitempty"`
}

// GrantAwardRequest attaches an award to a service record
type GrantAwardRequest struct {
	AwardID  int64   `json:"awardId" binding:"required"`
	Citation *string `json:"citation,omitempty"`
}

// CreateAwardRequest creates an award definition
type CreateAwardRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
