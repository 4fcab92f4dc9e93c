package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/services"
	"github.com/ravenlog/ravenlog/internal/middleware"
)

// ReferenceController serves the rank, unit, position and form catalogs
type ReferenceController struct {
	referenceService *services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService *services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// ListRanks returns all ranks in precedence order
// @Summary List ranks
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Rank} "Ranks retrieved"
// @Router /ranks [get]
func (c *ReferenceController) ListRanks(ctx *gin.Context) {
	ranks, err := c.referenceService.ListRanks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, ranks)
}

// CreateRank adds a rank definition
// @Summary Create a rank
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRankRequest true "Rank definition"
// @Success 201 {object} dto.APIResponse{data=models.Rank} "Rank created"
// @Router /ranks [post]
func (c *ReferenceController) CreateRank(ctx *gin.Context) {
	var req dto.CreateRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	rank, err := c.referenceService.CreateRank(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, rank)
}

// UpdateRank replaces a rank definition
// @Summary Update a rank
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rank ID"
// @Param request body dto.CreateRankRequest true "Rank definition"
// @Success 200 {object} dto.APIResponse{data=models.Rank} "Rank updated"
// @Failure 404 {object} dto.ErrorResponse "Rank not found"
// @Router /ranks/{id} [put]
func (c *ReferenceController) UpdateRank(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateRankRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	rank, err := c.referenceService.UpdateRank(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, rank)
}

// DeleteRank removes an unused rank
// @Summary Delete a rank
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rank ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Rank deleted"
// @Failure 404 {object} dto.ErrorResponse "Rank not found"
// @Failure 409 {object} dto.ErrorResponse "Rank is in use"
// @Router /ranks/{id} [delete]
func (c *ReferenceController) DeleteRank(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.referenceService.DeleteRank(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Rank deleted"})
}

// ListUnits returns all units
// @Summary List units
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Unit} "Units retrieved"
// @Router /units [get]
func (c *ReferenceController) ListUnits(ctx *gin.Context) {
	units, err := c.referenceService.ListUnits(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, units)
}

// GetUnit retrieves a unit
// @Summary Get unit by ID
// @Tags reference
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} dto.APIResponse{data=models.Unit} "Unit retrieved"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /units/{id} [get]
func (c *ReferenceController) GetUnit(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	unit, err := c.referenceService.GetUnit(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, unit)
}

// CreateUnit adds a unit definition
// @Summary Create a unit
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUnitRequest true "Unit definition"
// @Success 201 {object} dto.APIResponse{data=models.Unit} "Unit created"
// @Router /units [post]
func (c *ReferenceController) CreateUnit(ctx *gin.Context) {
	var req dto.CreateUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	unit, err := c.referenceService.CreateUnit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, unit)
}

// UpdateUnit replaces a unit definition
// @Summary Update a unit
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Param request body dto.CreateUnitRequest true "Unit definition"
// @Success 200 {object} dto.APIResponse{data=models.Unit} "Unit updated"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /units/{id} [put]
func (c *ReferenceController) UpdateUnit(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateUnitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	unit, err := c.referenceService.UpdateUnit(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, unit)
}

// DeleteUnit removes a unit with no assigned personnel
// @Summary Delete a unit
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Unit deleted"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Failure 409 {object} dto.ErrorResponse "Unit has assigned personnel"
// @Router /units/{id} [delete]
func (c *ReferenceController) DeleteUnit(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.referenceService.DeleteUnit(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Unit deleted"})
}

// ListUnitPositions returns the positions defined for a unit
// @Summary List unit positions
// @Description Returns the positions of a unit; a unit without positions yields an empty list
// @Tags reference
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} dto.APIResponse{data=[]models.UnitPosition} "Positions retrieved"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /units/{id}/positions [get]
func (c *ReferenceController) ListUnitPositions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	positions, err := c.referenceService.ListUnitPositions(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, positions)
}

// CreateUnitPosition adds a position to a unit
// @Summary Create a unit position
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Param request body dto.CreateUnitPositionRequest true "Position definition"
// @Success 201 {object} dto.APIResponse{data=models.UnitPosition} "Position created"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /units/{id}/positions [post]
func (c *ReferenceController) CreateUnitPosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateUnitPositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	position, err := c.referenceService.CreateUnitPosition(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, position)
}

// UpdateUnitPosition replaces a position definition
// @Summary Update a unit position
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param request body dto.CreateUnitPositionRequest true "Position definition"
// @Success 200 {object} dto.APIResponse{data=models.UnitPosition} "Position updated"
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Router /positions/{id} [put]
func (c *ReferenceController) UpdateUnitPosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateUnitPositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	position, err := c.referenceService.UpdateUnitPosition(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, position)
}

// DeleteUnitPosition removes a position
// @Summary Delete a unit position
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Position deleted"
// @Failure 404 {object} dto.ErrorResponse "Position not found"
// @Router /positions/{id} [delete]
func (c *ReferenceController) DeleteUnitPosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.referenceService.DeleteUnitPosition(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Position deleted"})
}

// ListForms returns all recruitment form definitions
// @Summary List recruitment forms
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RecruitmentForm} "Forms retrieved"
// @Router /forms [get]
func (c *ReferenceController) ListForms(ctx *gin.Context) {
	forms, err := c.referenceService.ListForms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, forms)
}

// GetForm retrieves a form with its fields
// @Summary Get form by ID
// @Tags reference
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=models.RecruitmentForm} "Form retrieved"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (c *ReferenceController) GetForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	form, err := c.referenceService.GetForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, form)
}

// CreateForm adds a recruitment form
// @Summary Create a recruitment form
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFormRequest true "Form definition with ordered fields"
// @Success 201 {object} dto.APIResponse{data=models.RecruitmentForm} "Form created"
// @Router /forms [post]
func (c *ReferenceController) CreateForm(ctx *gin.Context) {
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	form, err := c.referenceService.CreateForm(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, form)
}

// DeleteForm removes a form no application references
// @Summary Delete a recruitment form
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Form deleted"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 409 {object} dto.ErrorResponse "Form has submitted applications"
// @Router /forms/{id} [delete]
func (c *ReferenceController) DeleteForm(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.referenceService.DeleteForm(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Form deleted"})
}
