package models

// Rank is an organizational grade assignable to personnel. Read-only
// reference data from the workflow's perspective.
type Rank struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Abbreviation string  `json:"abbreviation" db:"abbreviation"`
	SortOrder    int     `json:"sortOrder" db:"sort_order"`
	ImageURL     *string `json:"imageUrl,omitempty" db:"image_url"`
}
