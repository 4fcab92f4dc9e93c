package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Every controller
// funnels its errors through here so status codes and error codes stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Workflow errors
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrApplicationTerminal):
		respond(c, http.StatusConflict, dto.ErrorCodeTransitionNotAllowed, err.Error())
	case errors.Is(err, apperrors.ErrNotApproved):
		respond(c, http.StatusConflict, dto.ErrorCodeNotApproved, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		respond(c, http.StatusConflict, dto.ErrorCodeAlreadyProcessed, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateApplication),
		errors.Is(err, apperrors.ErrPersonnelExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrFormFieldUnknown),
		errors.Is(err, apperrors.ErrFormFieldMissing),
		errors.Is(err, apperrors.ErrPositionMismatch),
		errors.Is(err, apperrors.ErrInvalidProgress),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	// Missing resources
	case errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrFormNotFound),
		errors.Is(err, apperrors.ErrRankNotFound),
		errors.Is(err, apperrors.ErrUnitNotFound),
		errors.Is(err, apperrors.ErrPositionNotFound),
		errors.Is(err, apperrors.ErrPersonnelNotFound),
		errors.Is(err, apperrors.ErrQualificationNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrAwardNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Generic
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
