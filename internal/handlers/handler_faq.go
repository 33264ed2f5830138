package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
)

// faqHandler serves the FAQ page entries.
type faqHandler struct {
	faqService portssvc.FAQSvcFacade
}

func newFAQHandler(fs portssvc.FAQSvcFacade) *faqHandler {
	return &faqHandler{faqService: fs}
}

// registerFAQRoutes registers the public FAQ route.
func registerFAQRoutes(rg *gin.RouterGroup, fs portssvc.FAQSvcFacade) {
	h := newFAQHandler(fs)
	rg.GET("/faqs", h.listFAQs)
}

// registerAdminFAQRoutes registers the back-office FAQ routes.
func registerAdminFAQRoutes(rg *gin.RouterGroup, fs portssvc.FAQSvcFacade) {
	h := newFAQHandler(fs)

	faqs := rg.Group("/faqs")
	{
		faqs.POST("", h.createFAQ)
		faqs.GET("", h.listFAQsAdmin)
		faqs.PUT("/:id", h.updateFAQ)
		faqs.DELETE("/:id", h.deleteFAQ)
	}
}

// listFAQs godoc
// @Summary List published FAQ entries
// @Description Returns published entries ordered by position.
// @Tags faqs
// @Produce json
// @Success 200 {array} dto.FAQResponse
// @Router /faqs [get]
func (h *faqHandler) listFAQs(c *gin.Context) {
	h.listFAQsWith(c, true)
}

// listFAQsAdmin godoc
// @Summary List all FAQ entries (admin)
// @Tags admin-faqs
// @Produce json
// @Success 200 {array} dto.FAQResponse
// @Router /admin/faqs [get]
func (h *faqHandler) listFAQsAdmin(c *gin.Context) {
	h.listFAQsWith(c, false)
}

func (h *faqHandler) listFAQsWith(c *gin.Context, onlyPublished bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	faqs, err := h.faqService.ListFAQs(c.Request.Context(), onlyPublished)
	if err != nil {
		logger.Error("Failed to list FAQs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list FAQs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFAQResponse(faqs))
}

// createFAQ godoc
// @Summary Create an FAQ entry
// @Tags admin-faqs
// @Accept json
// @Produce json
// @Param faq body dto.CreateFAQRequest true "FAQ details"
// @Success 201 {object} dto.FAQResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/faqs [post]
func (h *faqHandler) createFAQ(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	faq, err := h.faqService.CreateFAQ(c.Request.Context(), req, adminID)
	if err != nil {
		logger.Error("Failed to create FAQ", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create FAQ"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFAQResponse(faq))
}

// updateFAQ godoc
// @Summary Update an FAQ entry
// @Tags admin-faqs
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param faq body dto.UpdateFAQRequest true "Fields to update"
// @Success 200 {object} dto.FAQResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/faqs/{id} [put]
func (h *faqHandler) updateFAQ(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	faqID := c.Param("id")

	var req dto.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	faq, err := h.faqService.UpdateFAQ(c.Request.Context(), faqID, req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "FAQ not found"})
			return
		}
		logger.Error("Failed to update FAQ", slog.String("faq_id", faqID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update FAQ"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFAQResponse(faq))
}

// deleteFAQ godoc
// @Summary Delete an FAQ entry
// @Tags admin-faqs
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/faqs/{id} [delete]
func (h *faqHandler) deleteFAQ(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	faqID := c.Param("id")

	adminID, _ := middleware.GetUserIDFromContext(c)
	if err := h.faqService.DeleteFAQ(c.Request.Context(), faqID, adminID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "FAQ not found"})
			return
		}
		logger.Error("Failed to delete FAQ", slog.String("faq_id", faqID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete FAQ"})
		return
	}

	c.Status(http.StatusNoContent)
}
