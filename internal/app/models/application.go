package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate's submitted enlistment request.
type Application struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	ApplicantID   int64             `json:"applicantId" db:"applicant_id"`
	FormID        int64             `json:"formId" db:"form_id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	FormData      map[string]string `json:"formData" db:"form_data"`
	ReviewerNotes *string           `json:"reviewerNotes,omitempty" db:"reviewer_notes"`
	ReviewedAt    *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`
	SubmittedAt   time.Time         `json:"submittedAt" db:"submitted_at"`

	Applicant *User            `json:"applicant,omitempty"`
	Form      *RecruitmentForm `json:"form,omitempty"`
}
