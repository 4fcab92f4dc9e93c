package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/services"
	"github.com/ravenlog/ravenlog/internal/middleware"
	"github.com/ravenlog/ravenlog/internal/pkg/helpers"
)

// ApplicationController handles the candidate intake and review workflow
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// SubmitApplication handles a candidate submitting an application
// @Summary Submit an application
// @Description Validates the answers against the recruitment form and creates a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitApplicationRequest true "Application answers"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid or incomplete answers"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 409 {object} dto.ErrorResponse "Applicant already has an open application"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	application, err := c.applicationService.SubmitApplication(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, application)
}

// ListApplications retrieves applications for review
// @Summary List applications
// @Description Retrieves applications newest first, optionally filtered by status
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, in_review, approved, rejected, processed)
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown status filter"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	var status *models.ApplicationStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.ApplicationStatus(raw)
		status = &s
	}

	page, size := helpers.GetPaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	applications, total, err := c.applicationService.ListApplications(ctx, status, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.PaginatedResponse{
		Items:      applications,
		Pagination: helpers.NewPaginationInfo(page, size, total),
	})
}

// GetApplication retrieves a single application
// @Summary Get application by ID
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application retrieved"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetApplication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, application)
}

// UpdateStatus moves an application through the review workflow
// @Summary Update application status
// @Description Applies a review transition; illegal transitions are rejected
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.UpdateStatusRequest true "Target status and optional reviewer notes"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, application)
}

// ProcessCandidate enlists the applicant of an approved application
// @Summary Process an approved candidate
// @Description Marks the application processed, creates the service record and promotes the applicant, atomically
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body dto.ProcessCandidateRequest true "Rank, unit and optional position"
// @Success 201 {object} dto.APIResponse{data=models.Personnel} "Candidate processed"
// @Failure 400 {object} dto.ErrorResponse "Position does not belong to the unit"
// @Failure 404 {object} dto.ErrorResponse "Application, rank, unit or position not found"
// @Failure 409 {object} dto.ErrorResponse "Application not approved or already processed"
// @Router /applications/{id}/process [post]
func (c *ApplicationController) ProcessCandidate(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProcessCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	record, err := c.applicationService.ProcessCandidate(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, record)
}
