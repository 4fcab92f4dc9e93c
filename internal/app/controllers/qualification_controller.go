package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/services"
	"github.com/ravenlog/ravenlog/internal/middleware"
)

// QualificationController handles the qualification catalog and training
// progress tracking
type QualificationController struct {
	qualificationService *services.QualificationService
}

// NewQualificationController creates a new QualificationController
func NewQualificationController(qualificationService *services.QualificationService) *QualificationController {
	return &QualificationController{
		qualificationService: qualificationService,
	}
}

// ListQualifications returns the catalog grouped by category
// @Summary List qualifications
// @Tags qualifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Qualification} "Qualifications retrieved"
// @Router /qualifications [get]
func (c *QualificationController) ListQualifications(ctx *gin.Context) {
	qualifications, err := c.qualificationService.ListQualifications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, qualifications)
}

// CreateQualification adds a qualification definition
// @Summary Create a qualification
// @Tags qualifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQualificationRequest true "Qualification definition"
// @Success 201 {object} dto.APIResponse{data=models.Qualification} "Qualification created"
// @Router /qualifications [post]
func (c *QualificationController) CreateQualification(ctx *gin.Context) {
	var req dto.CreateQualificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	qualification, err := c.qualificationService.CreateQualification(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, qualification)
}

// DeleteQualification removes a qualification nobody is tracked against
// @Summary Delete a qualification
// @Tags qualifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Qualification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Qualification deleted"
// @Failure 404 {object} dto.ErrorResponse "Qualification not found"
// @Failure 409 {object} dto.ErrorResponse "Qualification has tracked progress"
// @Router /qualifications/{id} [delete]
func (c *QualificationController) DeleteQualification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.qualificationService.DeleteQualification(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Qualification deleted"})
}

// UpdateProgress sets a person's progress toward a qualification
// @Summary Update qualification progress
// @Description Sets progress between 0 and 100; reaching 100 marks the qualification awarded
// @Tags qualifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Param request body dto.UpdateProgressRequest true "Qualification and progress"
// @Success 200 {object} dto.APIResponse{data=models.PersonnelQualification} "Progress updated"
// @Failure 400 {object} dto.ErrorResponse "Progress out of range"
// @Failure 404 {object} dto.ErrorResponse "Service record or qualification not found"
// @Router /personnel/{id}/qualifications [put]
func (c *QualificationController) UpdateProgress(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	progress, err := c.qualificationService.UpdateProgress(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, progress)
}

// ListPersonnelQualifications returns a service record's tracked progress
// @Summary List personnel qualifications
// @Tags qualifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Success 200 {object} dto.APIResponse{data=[]models.PersonnelQualification} "Qualifications retrieved"
// @Failure 404 {object} dto.ErrorResponse "Service record not found"
// @Router /personnel/{id}/qualifications [get]
func (c *QualificationController) ListPersonnelQualifications(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	entries, err := c.qualificationService.ListPersonnelQualifications(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, entries)
}
