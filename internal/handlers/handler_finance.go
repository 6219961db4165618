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

// financeHandler handles dues billing, payment submission, verification, and
// donation requests.
type financeHandler struct {
	billingService      portssvc.BillingSvcFacade
	paymentService      portssvc.PaymentSvcFacade
	verificationService portssvc.VerificationSvcFacade
	dueQueryService     portssvc.DueQuerySvcFacade
	residentService     portssvc.ResidentSvcFacade
}

// newFinanceHandler creates a new financeHandler.
func newFinanceHandler(services *portssvc.ServiceContainer) *financeHandler {
	return &financeHandler{
		billingService:      services.Billing,
		paymentService:      services.Payment,
		verificationService: services.Verification,
		dueQueryService:     services.DueQuery,
		residentService:     services.Resident,
	}
}

// registerFinanceRoutes registers all dues and donation routes.
func registerFinanceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newFinanceHandler(services)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	dues := rg.Group("/dues")
	{
		dues.POST("/generate", adminOnly, h.generateBills)
		dues.POST("/payments", h.submitDuesPayment)
		dues.GET("", h.listDues)
		dues.GET("/:id", h.getDue)
		dues.POST("/:id/approve", adminOnly, h.approveDue)
		dues.POST("/:id/reject", adminOnly, h.rejectDue)
	}
	rg.POST("/donations", h.submitDonation)
}

// ownResident resolves the caller's resident record. Responds with the right
// error status and returns false when that fails.
func (h *financeHandler) ownResident(c *gin.Context) (*domain.Resident, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	resident, err := h.residentService.GetResidentByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "No resident record linked to this account"})
			return nil, false
		}
		logger.Error("Failed to resolve own resident", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve resident"})
		return nil, false
	}
	return resident, true
}

// generateBills godoc
// @Summary Generate monthly dues bills
// @Description Creates one BILL per active resident for the period. Idempotent: already-billed residents are skipped.
// @Tags dues
// @Accept json
// @Produce json
// @Param period body dto.GenerateBillsRequest true "Billing period"
// @Success 200 {object} dto.GenerateBillsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues/generate [post]
func (h *financeHandler) generateBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	created, err := h.billingService.GenerateBills(c.Request.Context(), domain.Period{Month: req.Month, Year: req.Year}, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to generate bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate bills"})
		return
	}
	c.JSON(http.StatusOK, dto.GenerateBillsResponse{Created: created})
}

// submitDuesPayment godoc
// @Summary Submit a dues payment
// @Description Submits payment for one or more billing periods. The submitted bills move to PENDING_VERIFICATION and admins are notified.
// @Tags dues
// @Accept json
// @Produce json
// @Param payment body dto.SubmitDuesPaymentRequest true "Payment details"
// @Success 200 {object} dto.SubmitPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues/payments [post]
func (h *financeHandler) submitDuesPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitDuesPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resident, ok := h.ownResident(c)
	if !ok {
		return
	}

	dues, total, err := h.paymentService.SubmitDuesPayment(c.Request.Context(), resident.ResidentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit dues payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit payment"})
		return
	}

	resp := dto.SubmitPaymentResponse{
		Dues:         make([]dto.DueResponse, len(dues)),
		TotalCharged: total,
	}
	for i := range dues {
		resp.Dues[i] = dto.ToDueResponse(&dues[i])
	}
	c.JSON(http.StatusOK, resp)
}

// submitDonation godoc
// @Summary Submit a donation
// @Description Records a one-off wakaf donation awaiting verification.
// @Tags dues
// @Accept json
// @Produce json
// @Param donation body dto.SubmitDonationRequest true "Donation details"
// @Success 201 {object} dto.DueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /donations [post]
func (h *financeHandler) submitDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resident, ok := h.ownResident(c)
	if !ok {
		return
	}

	due, err := h.paymentService.SubmitDonation(c.Request.Context(), resident.ResidentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit donation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit donation"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToDueResponse(due))
}

// listDues godoc
// @Summary List due records
// @Description Admins see all records; residents see only their own.
// @Tags dues
// @Produce json
// @Param residentID query string false "Filter by resident (admin only)"
// @Param status query string false "Filter by status" Enums(BILL, PENDING_VERIFICATION, PAID)
// @Param kind query string false "Filter by kind" Enums(IURAN, WAKAF, UMUM)
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDuesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues [get]
func (h *financeHandler) listDues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDuesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if !domain.UserRole(role).IsAdminRole() {
		// Residents only ever see their own records.
		resident, ok := h.ownResident(c)
		if !ok {
			return
		}
		params.ResidentID = resident.ResidentID
	}

	dues, err := h.dueQueryService.ListDues(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list due records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list due records"})
		return
	}

	resp := dto.ListDuesResponse{Dues: make([]dto.DueResponse, len(dues))}
	for i := range dues {
		resp.Dues[i] = dto.ToDueResponse(&dues[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getDue godoc
// @Summary Get a due record by ID
// @Description Admins may fetch any record; residents only their own.
// @Tags dues
// @Produce json
// @Param id path string true "Due record ID"
// @Success 200 {object} dto.DueResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues/{id} [get]
func (h *financeHandler) getDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	due, err := h.dueQueryService.GetDueByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Due record not found"})
			return
		}
		logger.Error("Failed to get due record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve due record"})
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if !domain.UserRole(role).IsAdminRole() {
		resident, ok := h.ownResident(c)
		if !ok {
			return
		}
		if due.ResidentID != resident.ResidentID {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.ToDueResponse(due))
}

// approveDue godoc
// @Summary Approve a submitted payment
// @Description Moves a PENDING_VERIFICATION record to PAID and notifies the resident.
// @Tags dues
// @Produce json
// @Param id path string true "Due record ID"
// @Success 200 {object} dto.DueResponse
// @Failure 400 {object} ErrorResponse "Record is not awaiting verification"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues/{id}/approve [post]
func (h *financeHandler) approveDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	due, err := h.verificationService.ApproveDue(c.Request.Context(), c.Param("id"), actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Due record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to approve due", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve payment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDueResponse(due))
}

// rejectDue godoc
// @Summary Reject a submitted payment
// @Description Reverts a PENDING_VERIFICATION record to BILL with a mandatory reason and notifies the resident.
// @Tags dues
// @Accept json
// @Produce json
// @Param id path string true "Due record ID"
// @Param rejection body dto.RejectDueRequest true "Rejection reason"
// @Success 200 {object} dto.DueResponse
// @Failure 400 {object} ErrorResponse "Missing reason or record not awaiting verification"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /dues/{id}/reject [post]
func (h *financeHandler) rejectDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RejectDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rejection reason is required"})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	due, err := h.verificationService.RejectDue(c.Request.Context(), c.Param("id"), req.Reason, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Due record not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to reject due", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reject payment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDueResponse(due))
}
