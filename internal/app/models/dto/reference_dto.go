package dto

// CreateRankRequest creates or updates a rank definition
type CreateRankRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Abbreviation string  `json:"abbreviation" binding:"required,max=16"`
	SortOrder    int     `json:"sortOrder"`
	ImageURL     *string `json:"imageUrl,omitempty"`
}

// CreateUnitRequest creates or updates a unit definition
type CreateUnitRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	UnitType string  `json:"unitType" binding:"required,max=50"`
	Callsign *string `json:"callsign,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CreateUnitPositionRequest creates or updates a position within a unit
type CreateUnitPositionRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Description  *string `json:"description,omitempty"`
	Color        string  `json:"color" binding:"omitempty,max=16"`
	IsLeadership bool    `json:"isLeadership"`
}

// CreateFormRequest creates a recruitment form with its ordered fields
type CreateFormRequest struct {
	Title       string                   `json:"title" binding:"required,min=2,max=200"`
	Description *string                  `json:"description,omitempty"`
	Fields      []CreateFormFieldRequest `json:"fields" binding:"required,min=1,dive"`
}

// CreateFormFieldRequest is one field of a form definition
type CreateFormFieldRequest struct {
	Label     string  `json:"label" binding:"required,min=1,max=200"`
	FieldType string  `json:"fieldType" binding:"required,oneof=text textarea select checkbox date number"`
	Required  bool    `json:"required"`
	HelpText  *string `json:"helpText,omitempty"`
}
