package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/services"
	"github.com/ravenlog/ravenlog/internal/middleware"
	"github.com/ravenlog/ravenlog/internal/pkg/helpers"
)

// EventController handles the operations calendar
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent schedules a new event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event definition"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created"
// @Failure 400 {object} dto.ErrorResponse "End precedes start"
// @Failure 404 {object} dto.ErrorResponse "Unit not found"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, event)
}

// ListEvents returns events inside an optional window
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param unitId query int false "Filter by unit ID"
// @Param from query string false "Window start (RFC 3339)"
// @Param to query string false "Window end (RFC 3339)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Events retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	var unitID *int64
	if raw := ctx.Query("unitId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBindError(ctx, err)
			return
		}
		unitID = &id
	}

	var from, to *time.Time
	if raw := ctx.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondBindError(ctx, err)
			return
		}
		from = &t
	}
	if raw := ctx.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondBindError(ctx, err)
			return
		}
		to = &t
	}

	page, size := helpers.GetPaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	events, total, err := c.eventService.ListEvents(ctx, unitID, from, to, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, dto.PaginatedResponse{
		Items:      events,
		Pagination: helpers.NewPaginationInfo(page, size, total),
	})
}

// GetEvent retrieves an event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, event)
}

// UpdateEvent reschedules or retitles an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.CreateEventRequest true "Event definition"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event updated"
// @Failure 400 {object} dto.ErrorResponse "End precedes start"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, event)
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.SuccessResponse{Message: "Event deleted"})
}
