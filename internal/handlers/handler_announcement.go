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

// announcementHandler handles announcement requests.
type announcementHandler struct {
	announcementService portssvc.AnnouncementSvcFacade
}

// newAnnouncementHandler creates a new announcementHandler.
func newAnnouncementHandler(announcementService portssvc.AnnouncementSvcFacade) *announcementHandler {
	return &announcementHandler{announcementService: announcementService}
}

// RegisterAnnouncementRoutes registers announcement routes. Reads are open to
// any authenticated user; writes are restricted to admins.
func RegisterAnnouncementRoutes(rg *gin.RouterGroup, announcementService portssvc.AnnouncementSvcFacade) {
	h := newAnnouncementHandler(announcementService)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	announcements := rg.Group("/announcements")
	{
		announcements.GET("", h.listAnnouncements)
		announcements.GET("/:id", h.getAnnouncement)
		announcements.POST("", adminOnly, h.createAnnouncement)
		announcements.PUT("/:id", adminOnly, h.updateAnnouncement)
		announcements.DELETE("/:id", adminOnly, h.deleteAnnouncement)
	}
}

// createAnnouncement godoc
// @Summary Publish an announcement
// @Description Publishes an announcement and notifies all community members.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /announcements [post]
func (h *announcementHandler) createAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	announcement, err := h.announcementService.CreateAnnouncement(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to create announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create announcement"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(announcement))
}

// getAnnouncement godoc
// @Summary Get an announcement by ID
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *announcementHandler) getAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	announcement, err := h.announcementService.GetAnnouncementByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Announcement not found"})
			return
		}
		logger.Error("Failed to get announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve announcement"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(announcement))
}

// listAnnouncements godoc
// @Summary List announcements
// @Description Returns announcements newest first.
// @Tags announcements
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAnnouncementsResponse
// @Security BearerAuth
// @Router /announcements [get]
func (h *announcementHandler) listAnnouncements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAnnouncementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	announcements, err := h.announcementService.ListAnnouncements(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list announcements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list announcements"})
		return
	}

	resp := dto.ListAnnouncementsResponse{Announcements: make([]dto.AnnouncementResponse, len(announcements))}
	for i := range announcements {
		resp.Announcements[i] = dto.ToAnnouncementResponse(&announcements[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateAnnouncement godoc
// @Summary Edit an announcement
// @Description Edits title or body. Editing does not re-notify members.
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param announcement body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.AnnouncementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *announcementHandler) updateAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	announcement, err := h.announcementService.UpdateAnnouncement(c.Request.Context(), c.Param("id"), req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Announcement not found"})
			return
		}
		logger.Error("Failed to update announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update announcement"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAnnouncementResponse(announcement))
}

// deleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *announcementHandler) deleteAnnouncement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.announcementService.DeleteAnnouncement(c.Request.Context(), c.Param("id"), actorUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Announcement not found"})
			return
		}
		logger.Error("Failed to delete announcement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete announcement"})
		return
	}
	c.Status(http.StatusNoContent)
}
