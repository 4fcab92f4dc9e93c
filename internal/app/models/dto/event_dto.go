package dto

import "time"

// CreateEventRequest creates or updates a calendar event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description *string   `json:"description,omitempty"`
	UnitID      *int64    `json:"unitId,omitempty"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt" binding:"required"`
}
