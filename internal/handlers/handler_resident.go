package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// residentHandler handles HTTP requests related to residents.
type residentHandler struct {
	residentService portssvc.ResidentSvcFacade
}

// newResidentHandler creates a new residentHandler.
func newResidentHandler(rs portssvc.ResidentSvcFacade) *residentHandler {
	return &residentHandler{residentService: rs}
}

// registerResidentRoutes registers all resident-related routes.
func registerResidentRoutes(rg *gin.RouterGroup, residentService portssvc.ResidentSvcFacade) {
	h := newResidentHandler(residentService)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	residents := rg.Group("/residents")
	{
		residents.GET("/me", h.getOwnResident)
		residents.GET("", adminOnly, h.listResidents)
		residents.POST("", adminOnly, h.createResident)
		residents.GET("/:id", adminOnly, h.getResident)
		residents.PUT("/:id", adminOnly, h.updateResident)
		residents.DELETE("/:id", adminOnly, h.deleteResident)
		residents.POST("/:id/events", adminOnly, h.recordPopulationEvent)
		residents.GET("/:id/events", adminOnly, h.listPopulationEvents)
	}
}

// getOwnResident godoc
// @Summary Get own resident record
// @Description Retrieves the resident record linked to the authenticated account.
// @Tags residents
// @Produce json
// @Success 200 {object} dto.ResidentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No resident record linked"
// @Security BearerAuth
// @Router /residents/me [get]
func (h *residentHandler) getOwnResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resident, err := h.residentService.GetResidentByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No resident record linked to this account"})
			return
		}
		logger.Error("Failed to get own resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve resident"})
		return
	}
	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// createResident godoc
// @Summary Create a resident
// @Description Creates a resident record without a login account. Admin only.
// @Tags residents
// @Accept json
// @Produce json
// @Param resident body dto.CreateResidentRequest true "Resident details"
// @Success 201 {object} dto.ResidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "NIK already registered"
// @Security BearerAuth
// @Router /residents [post]
func (h *residentHandler) createResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	resident, err := h.residentService.CreateResident(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A resident with this NIK already exists"})
			return
		}
		logger.Error("Failed to create resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create resident"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToResidentResponse(resident))
}

// getResident godoc
// @Summary Get a resident by ID
// @Tags residents
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {object} dto.ResidentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents/{id} [get]
func (h *residentHandler) getResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resident, err := h.residentService.GetResidentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resident not found"})
			return
		}
		logger.Error("Failed to get resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve resident"})
		return
	}
	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// listResidents godoc
// @Summary List residents
// @Tags residents
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListResidentsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents [get]
func (h *residentHandler) listResidents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListResidentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	residents, err := h.residentService.ListResidents(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list residents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list residents"})
		return
	}

	resp := dto.ListResidentsResponse{Residents: make([]dto.ResidentResponse, len(residents))}
	for i := range residents {
		resp.Residents[i] = dto.ToResidentResponse(&residents[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateResident godoc
// @Summary Update a resident
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param resident body dto.UpdateResidentRequest true "Fields to update"
// @Success 200 {object} dto.ResidentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents/{id} [put]
func (h *residentHandler) updateResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	resident, err := h.residentService.UpdateResident(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resident not found"})
			return
		}
		logger.Error("Failed to update resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update resident"})
		return
	}
	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// deleteResident godoc
// @Summary Delete a resident
// @Description Soft-deletes a resident. Their due records are kept.
// @Tags residents
// @Produce json
// @Param id path string true "Resident ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents/{id} [delete]
func (h *residentHandler) deleteResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.residentService.DeleteResident(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resident not found"})
			return
		}
		logger.Error("Failed to delete resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete resident"})
		return
	}
	c.Status(http.StatusNoContent)
}

// recordPopulationEvent godoc
// @Summary Record a population event
// @Description Records a birth, death, or move against a resident and applies the implied status change.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param event body dto.RecordPopulationEventRequest true "Event details"
// @Success 201 {object} dto.PopulationEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents/{id}/events [post]
func (h *residentHandler) recordPopulationEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPopulationEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	recorderUserID, _ := middleware.GetUserIDFromContext(c)
	event, err := h.residentService.RecordPopulationEvent(c.Request.Context(), c.Param("id"), req, recorderUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resident not found"})
			return
		}
		logger.Error("Failed to record population event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record event"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToPopulationEventResponse(event))
}

// listPopulationEvents godoc
// @Summary List a resident's population events
// @Tags residents
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {array} dto.PopulationEventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /residents/{id}/events [get]
func (h *residentHandler) listPopulationEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.residentService.ListPopulationEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to list population events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list events"})
		return
	}

	resp := make([]dto.PopulationEventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToPopulationEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, resp)
}
