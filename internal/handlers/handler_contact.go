package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
)

// contactHandler serves the contact form.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers the public contact form route, rate
// limited per IP against drive-by form spam.
func registerContactRoutes(rg *gin.RouterGroup, cs portssvc.ContactSvcFacade) {
	h := newContactHandler(cs)

	rate, _ := limiter.NewRateFromFormatted("3-M")
	limitMiddleware := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	rg.POST("/contact", limitMiddleware, h.createContactMessage)
}

// registerAdminContactRoutes registers the back-office contact inbox.
func registerAdminContactRoutes(rg *gin.RouterGroup, cs portssvc.ContactSvcFacade) {
	h := newContactHandler(cs)
	rg.GET("/contact-messages", h.listContactMessages)
}

// createContactMessage godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.CreateContactMessageRequest true "Message details"
// @Success 201 {object} dto.ContactMessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h *contactHandler) createContactMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.contactService.CreateContactMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(created))
}

// listContactMessages godoc
// @Summary List contact messages (admin)
// @Tags admin-contact
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListContactMessagesResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/contact-messages [get]
func (h *contactHandler) listContactMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListContactMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	messages, nextToken, err := h.contactService.ListContactMessages(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list contact messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list messages"})
		return
	}

	resp := dto.ListContactMessagesResponse{Messages: make([]dto.ContactMessageResponse, len(messages)), NextToken: nextToken}
	for i := range messages {
		resp.Messages[i] = dto.ToContactMessageResponse(&messages[i])
	}
	c.JSON(http.StatusOK, resp)
}
