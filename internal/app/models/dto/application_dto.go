package dto

// SubmitApplicationRequest creates a new application against a recruitment form.
// FormData maps form field ids (as decimal strings) to answer values.
type SubmitApplicationRequest struct {
	FormID   int64             `json:"formId" binding:"required"`
	FormData map[string]string `json:"formData" binding:"required"`
}

// UpdateStatusRequest moves an application through the review workflow.
// Status must be one of pending, in_review, approved, rejected; the
// processed status is only reachable through candidate processing.
type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending in_review approved rejected"`
	Notes  *string `json:"notes,omitempty"`
}

// ProcessCandidateRequest commits the enlistment of an approved application
type ProcessCandidateRequest struct {
	RankID     int64  `json:"rankId" binding:"required"`
	UnitID     int64  `json:"unitId" binding:"required"`
	PositionID *int64 `json:"positionId,omitempty"`
}
