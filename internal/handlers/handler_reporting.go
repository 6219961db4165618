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

// reportingHandler serves aggregated finance reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers the finance report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	rg.GET("/reports/finance", adminOnly, h.getFinanceSummary)
}

// getFinanceSummary godoc
// @Summary Get the finance summary for a period range
// @Description Aggregates verified inflow and recorded outflow over an inclusive period range, with per-category totals.
// @Tags reports
// @Produce json
// @Param fromMonth query int true "Start month (1-12)"
// @Param fromYear query int true "Start year"
// @Param toMonth query int true "End month (1-12)"
// @Param toYear query int true "End year"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/finance [get]
func (h *reportingHandler) getFinanceSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.FinanceSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from := domain.Period{Month: params.FromMonth, Year: params.FromYear}
	to := domain.Period{Month: params.ToMonth, Year: params.ToYear}
	summary, err := h.reportingService.GetFinanceSummary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build finance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build finance summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary))
}
