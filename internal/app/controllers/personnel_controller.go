package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/services"
	"github.com/ravenlog/ravenlog/internal/middleware"
	"github.com/ravenlog/ravenlog/internal/pkg/helpers"
)

// PersonnelController handles service records and decorations
type PersonnelController struct {
	personnelService *services.PersonnelService
}

// NewPersonnelController creates a new PersonnelController
func NewPersonnelController(personnelService *services.PersonnelService) *PersonnelController {
	return &PersonnelController{
		personnelService: personnelService,
	}
}

// ListPersonnel returns the roster
// @Summary List personnel
// @Description Returns service records ordered by rank precedence, optionally filtered by unit
// @Tags personnel
// @Produce json
// @Security BearerAuth
// @Param unitId query int false "Filter by unit ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Personnel retrieved"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /personnel [get]
func (c *PersonnelController) ListPersonnel(ctx *gin.Context) {
	var unitID *int64
	if raw := ctx.Query("unitId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBindError(ctx, err)
			return
		}
		unitID = &id
	}

	page, size := helpers.GetPaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	records, total, err := c.personnelService.ListPersonnel(ctx, unitID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.PaginatedResponse{
		Items:      records,
		Pagination: helpers.NewPaginationInfo(page, size, total),
	})
}

// GetPersonnel retrieves one service record
// @Summary Get personnel by ID
// @Tags personnel
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Success 200 {object} dto.APIResponse{data=models.Personnel} "Service record retrieved"
// @Failure 404 {object} dto.ErrorResponse "Service record not found"
// @Router /personnel/{id} [get]
func (c *PersonnelController) GetPersonnel(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	record, err := c.personnelService.GetPersonnel(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, record)
}

// GetOwnRecord retrieves the caller's service record
// @Summary Get own service record
// @Tags personnel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Personnel} "Service record retrieved"
// @Failure 404 {object} dto.ErrorResponse "No service record for this user"
// @Router /personnel/me [get]
func (c *PersonnelController) GetOwnRecord(ctx *gin.Context) {
	record, err := c.personnelService.GetPersonnelByUser(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, record)
}

// UpdateAssignment changes a service record's rank, unit and position
// @Summary Update assignment
// @Description Reassigns rank, unit and position; a position must belong to the assigned unit
// @Tags personnel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Param request body dto.UpdateAssignmentRequest true "New assignment"
// @Success 200 {object} dto.APIResponse{data=models.Personnel} "Assignment updated"
// @Failure 400 {object} dto.ErrorResponse "Position does not belong to the unit"
// @Failure 404 {object} dto.ErrorResponse "Service record, rank, unit or position not found"
// @Router /personnel/{id}/assignment [put]
func (c *PersonnelController) UpdateAssignment(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	record, err := c.personnelService.UpdateAssignment(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, record)
}

// ListAwards returns the award catalog
// @Summary List awards
// @Tags awards
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Award} "Awards retrieved"
// @Router /awards [get]
func (c *PersonnelController) ListAwards(ctx *gin.Context) {
	awards, err := c.personnelService.ListAwards(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, awards)
}

// CreateAward adds an award definition
// @Summary Create an award
// @Tags awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAwardRequest true "Award definition"
// @Success 201 {object} dto.APIResponse{data=models.Award} "Award created"
// @Router /awards [post]
func (c *PersonnelController) CreateAward(ctx *gin.Context) {
	var req dto.CreateAwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	award, err := c.personnelService.CreateAward(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, award)
}

// DeleteAward removes an award that was never granted
// @Summary Delete an award
// @Tags awards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Award ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Award deleted"
// @Failure 404 {object} dto.ErrorResponse "Award not found"
// @Failure 409 {object} dto.ErrorResponse "Award has been granted"
// @Router /awards/{id} [delete]
func (c *PersonnelController) DeleteAward(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.personnelService.DeleteAward(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Award deleted"})
}

// GrantAward attaches an award to a service record
// @Summary Grant an award
// @Tags awards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Param request body dto.GrantAwardRequest true "Award and optional citation"
// @Success 201 {object} dto.APIResponse{data=models.PersonnelAward} "Award granted"
// @Failure 404 {object} dto.ErrorResponse "Service record or award not found"
// @Router /personnel/{id}/awards [post]
func (c *PersonnelController) GrantAward(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.GrantAwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	grant, err := c.personnelService.GrantAward(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, grant)
}

// ListPersonnelAwards returns the awards granted to a service record
// @Summary List personnel awards
// @Tags awards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Personnel ID"
// @Success 200 {object} dto.APIResponse{data=[]models.PersonnelAward} "Awards retrieved"
// @Failure 404 {object} dto.ErrorResponse "Service record not found"
// @Router /personnel/{id}/awards [get]
func (c *PersonnelController) ListPersonnelAwards(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	grants, err := c.personnelService.ListPersonnelAwards(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, grants)
}
