package models

// Unit is an organizational sub-group
type Unit struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	UnitType string  `json:"unitType" db:"unit_type"`
	Callsign *string `json:"callsign,omitempty" db:"callsign"`
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url"`
}

// UnitPosition is a role slot scoped to exactly one unit. The valid
// position set for a candidate depends on the selected unit.
type UnitPosition struct {
	ID           int64   `json:"id" db:"id"`
	UnitID       int64   `json:"unitId" db:"unit_id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	Color        string  `json:"color" db:"color"`
	IsLeadership bool    `json:"isLeadership" db:"is_leadership"`
}
