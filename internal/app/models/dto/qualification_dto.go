package dto

// CreateQualificationRequest creates a qualification definition
type CreateQualificationRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Category    string  `json:"category" binding:"required,max=50"`
	Description *string `json:"description,omitempty"`
}

// UpdateProgressRequest sets a person's progress toward a qualification
type UpdateProgressRequest struct {
	QualificationID int64 `json:"qualificationId" binding:"required"`
	Progress        int   `json:"progress" binding:"min=0,max=100"`
}
