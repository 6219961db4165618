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

// assistHandler exposes the AI-assisted helpers.
type assistHandler struct {
	assistService portssvc.AssistSvcFacade
}

// newAssistHandler creates a new assistHandler.
func newAssistHandler(assistService portssvc.AssistSvcFacade) *assistHandler {
	return &assistHandler{assistService: assistService}
}

// registerAssistRoutes registers assistant routes. Letter drafting and KTP
// extraction are admin tools; chat is open to all members.
func registerAssistRoutes(rg *gin.RouterGroup, assistService portssvc.AssistSvcFacade) {
	h := newAssistHandler(assistService)
	adminOnly := middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RolePengurus))

	assist := rg.Group("/assist")
	{
		assist.POST("/letters", adminOnly, h.draftLetter)
		assist.POST("/chat", h.chat)
		assist.POST("/ktp", adminOnly, h.extractIDCard)
	}
}

// draftLetter godoc
// @Summary Draft an administrative letter
// @Description Generates a letter draft for a resident. On generation failure the text is an apology, not an error.
// @Tags assist
// @Accept json
// @Produce json
// @Param letter body dto.DraftLetterRequest true "Letter request"
// @Success 200 {object} dto.AssistResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Resident not found"
// @Security BearerAuth
// @Router /assist/letters [post]
func (h *assistHandler) draftLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DraftLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	text, err := h.assistService.DraftLetter(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resident not found"})
			return
		}
		logger.Error("Failed to draft letter", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to draft letter"})
		return
	}
	c.JSON(http.StatusOK, dto.AssistResponse{Text: text})
}

// chat godoc
// @Summary Chat with the community assistant
// @Description Answers one message with optional conversation history. On generation failure the text is an apology, not an error.
// @Tags assist
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Chat message and history"
// @Success 200 {object} dto.AssistResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /assist/chat [post]
func (h *assistHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	text, err := h.assistService.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to answer chat message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to answer chat message"})
		return
	}
	c.JSON(http.StatusOK, dto.AssistResponse{Text: text})
}

// extractIDCard godoc
// @Summary Extract fields from a KTP photo
// @Description Reads NIK, name, and address from an Indonesian ID card image.
// @Tags assist
// @Accept json
// @Produce json
// @Param image body dto.ExtractIDCardRequest true "Base64 image payload"
// @Success 200 {object} dto.IDCardData
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Extraction failed"
// @Security BearerAuth
// @Router /assist/ktp [post]
func (h *assistHandler) extractIDCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExtractIDCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	data, err := h.assistService.ExtractIDCard(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to extract ID card fields", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to extract ID card fields"})
		return
	}
	c.JSON(http.StatusOK, data)
}
