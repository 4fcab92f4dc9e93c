package models

import (
	"time"
)

// Event is a calendar entry, optionally scoped to a unit
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	UnitID      *int64    `json:"unitId,omitempty" db:"unit_id"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	EndsAt      time.Time `json:"endsAt" db:"ends_at"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`

	Unit *Unit `json:"unit,omitempty"`
}
