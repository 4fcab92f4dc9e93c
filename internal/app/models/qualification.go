package models

import (
	"time"

	"github.com/google/uuid"
)

// Qualification is a trackable certification definition
type Qualification struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Description *string `json:"description,omitempty" db:"description"`
}

// PersonnelQualification tracks one person's progress toward a
// qualification. AwardedAt is set when progress reaches 100.
type PersonnelQualification struct {
	ID              int64      `json:"id" db:"id"`
	PersonnelID     uuid.UUID  `json:"personnelId" db:"personnel_id"`
	QualificationID int64      `json:"qualificationId" db:"qualification_id"`
	Progress        int        `json:"progress" db:"progress"`
	AwardedAt       *time.Time `json:"awardedAt,omitempty" db:"awarded_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	Qualification *Qualification `json:"qualification,omitempty"`
}
