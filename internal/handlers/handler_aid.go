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

// aidHandler handles social-aid distribution requests. All routes are
// admin-only; beneficiaries learn about distributions through notifications.
type aidHandler struct {
	aidService portssvc.AidSvcFacade
}

// newAidHandler creates a new aidHandler.
func newAidHandler(aidService portssvc.AidSvcFacade) *aidHandler {
	return &aidHandler{aidService: aidService}
}

// registerAidRoutes registers social-aid routes.
func registerAidRoutes(rg *gin.RouterGroup, aidService portssvc.AidSvcFacade) {
	h := newAidHandler(aidService)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	aid := rg.Group("/aid", adminOnly)
	{
		aid.POST("", h.scheduleAid)
		aid.GET("", h.listAid)
		aid.GET("/:id", h.getAid)
		aid.POST("/:id/distribute", h.markDistributed)
	}
}

// scheduleAid godoc
// @Summary Schedule an aid distribution
// @Description Records a planned distribution for a resident and notifies them.
// @Tags aid
// @Accept json
// @Produce json
// @Param aid body dto.ScheduleAidRequest true "Distribution details"
// @Success 201 {object} dto.AidResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Beneficiary resident not found"
// @Security BearerAuth
// @Router /aid [post]
func (h *aidHandler) scheduleAid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScheduleAidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	aid, err := h.aidService.ScheduleAid(c.Request.Context(), req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Beneficiary resident not found"})
			return
		}
		logger.Error("Failed to schedule aid distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to schedule aid distribution"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToAidResponse(aid))
}

// getAid godoc
// @Summary Get an aid distribution by ID
// @Tags aid
// @Produce json
// @Param id path string true "Aid distribution ID"
// @Success 200 {object} dto.AidResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /aid/{id} [get]
func (h *aidHandler) getAid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	aid, err := h.aidService.GetAidByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Aid distribution not found"})
			return
		}
		logger.Error("Failed to get aid distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve aid distribution"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAidResponse(aid))
}

// listAid godoc
// @Summary List aid distributions
// @Tags aid
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAidResponse
// @Security BearerAuth
// @Router /aid [get]
func (h *aidHandler) listAid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAidParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	distributions, err := h.aidService.ListAid(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list aid distributions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list aid distributions"})
		return
	}

	resp := dto.ListAidResponse{Distributions: make([]dto.AidResponse, len(distributions))}
	for i := range distributions {
		resp.Distributions[i] = dto.ToAidResponse(&distributions[i])
	}
	c.JSON(http.StatusOK, resp)
}

// markDistributed godoc
// @Summary Mark an aid distribution as handed out
// @Description Transitions a SCHEDULED distribution to DISTRIBUTED and notifies the beneficiary.
// @Tags aid
// @Produce json
// @Param id path string true "Aid distribution ID"
// @Success 200 {object} dto.AidResponse
// @Failure 400 {object} ErrorResponse "Distribution is not in SCHEDULED state"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /aid/{id}/distribute [post]
func (h *aidHandler) markDistributed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	aid, err := h.aidService.MarkDistributed(c.Request.Context(), c.Param("id"), actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Aid distribution not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to mark aid distributed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark aid distributed"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAidResponse(aid))
}
