package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// notificationHandler serves the authenticated user's notification inbox.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(notificationService portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// registerNotificationRoutes registers notification inbox routes.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.POST("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List own notifications
// @Description Returns the caller's notifications, newest first.
// @Tags notifications
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notifications"})
		return
	}

	resp := dto.ListNotificationsResponse{Notifications: make([]dto.NotificationResponse, len(notifications))}
	for i := range notifications {
		resp.Notifications[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, resp)
}

// unreadCount godoc
// @Summary Count own unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	unread, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to count unread notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to count unread notifications"})
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: unread})
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Only the recipient can mark their notification; anything else is a 404.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		logger.Error("Failed to mark notification read", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark notification read"})
		return
	}
	c.Status(http.StatusNoContent)
}
