package models

import (
	"time"

	"github.com/google/uuid"
)

// Personnel is an active service record created when a candidate is
// processed. Exactly one record per user, linked back to the application
// that produced it.
type Personnel struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        int64      `json:"userId" db:"user_id"`
	RankID        int64      `json:"rankId" db:"rank_id"`
	UnitID        int64      `json:"unitId" db:"unit_id"`
	PositionID    *int64     `json:"positionId,omitempty" db:"position_id"`
	ApplicationID *uuid.UUID `json:"applicationId,omitempty" db:"application_id"`
	EnlistedAt    time.Time  `json:"enlistedAt" db:"enlisted_at"`

	User     *User         `json:"user,omitempty"`
	Rank     *Rank         `json:"rank,omitempty"`
	Unit     *Unit         `json:"unit,omitempty"`
	Position *UnitPosition `json:"position,omitempty"`
}

// PersonnelAward is one awarded decoration on a service record
type PersonnelAward struct {
	ID          int64     `json:"id" db:"id"`
	PersonnelID uuid.UUID `json:"personnelId" db:"personnel_id"`
	AwardID     int64     `json:"awardId" db:"award_id"`
	Citation    *string   `json:"citation,omitempty" db:"citation"`
	AwardedAt   time.Time `json:"awardedAt" db:"awarded_at"`

	Award *Award `json:"award,omitempty"`
}

// Award is a decoration definition
type Award struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	ImageURL    *string `json:"imageUrl,omitempty" db:"image_url"`
}
