package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Application workflow errors
var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrApplicationTerminal  = errors.New("application is in a terminal status")
	ErrNotApproved          = errors.New("application is not approved")
	ErrAlreadyProcessed     = errors.New("application has already been processed")
	ErrFormFieldUnknown     = errors.New("answer does not match a form field")
	ErrFormFieldMissing     = errors.New("required form field has no answer")
	ErrDuplicateApplication = errors.New("applicant already has an open application")
)

// Reference data errors
var (
	ErrRankNotFound     = errors.New("rank not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrPositionNotFound = errors.New("unit position not found")
	ErrPositionMismatch = errors.New("position does not belong to the selected unit")
	ErrFormNotFound     = errors.New("recruitment form not found")
)

// Personnel errors
var (
	ErrPersonnelNotFound = errors.New("personnel record not found")
	ErrPersonnelExists   = errors.New("personnel record already exists for this user")
)

// Qualification errors
var (
	ErrQualificationNotFound = errors.New("qualification not found")
	ErrInvalidProgress       = errors.New("progress must be between 0 and 100")
)

// Event errors
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidDateRange = errors.New("event end must not precede start")
)

// Award errors
var (
	ErrAwardNotFound = errors.New("award not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
