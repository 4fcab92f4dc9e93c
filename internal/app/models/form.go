package models

// RecruitmentForm is a configurable intake form definition
type RecruitmentForm struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description *string     `json:"description,omitempty" db:"description"`
	Fields      []FormField `json:"fields,omitempty"`
}

// FormField is one question on a recruitment form. Fields are rendered
// and validated in sort_order.
type FormField struct {
	ID        int64   `json:"id" db:"id"`
	FormID    int64   `json:"formId" db:"form_id"`
	Label     string  `json:"label" db:"label"`
	FieldType string  `json:"fieldType" db:"field_type"`
	Required  bool    `json:"required" db:"required"`
	SortOrder int     `json:"sortOrder" db:"sort_order"`
	HelpText  *string `json:"helpText,omitempty" db:"help_text"`
}
