package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
)

// orderHandler serves bulk-order requests.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers the public bulk-order submission route, rate
// limited per IP against drive-by form spam.
func registerOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := newOrderHandler(os)

	rate, _ := limiter.NewRateFromFormatted("3-M")
	limitMiddleware := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	rg.POST("/bulk-orders", limitMiddleware, h.createBulkOrder)
}

// registerAdminOrderRoutes registers the back-office bulk-order inbox.
func registerAdminOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := newOrderHandler(os)

	orders := rg.Group("/bulk-orders")
	{
		orders.GET("", h.listBulkOrders)
		orders.PATCH("/:id/status", h.updateBulkOrderStatus)
	}
}

// createBulkOrder godoc
// @Summary Submit a bulk-order request
// @Description Accepts a storefront bulk purchase enquiry; requests start in the "new" status.
// @Tags bulk-orders
// @Accept json
// @Produce json
// @Param request body dto.CreateBulkOrderRequest true "Request details"
// @Success 201 {object} dto.BulkOrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /bulk-orders [post]
func (h *orderHandler) createBulkOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.orderService.CreateBulkOrderRequest(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create bulk order request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit request"})
		return
	}

	logger.Info("Bulk order request submitted", slog.String("request_id", created.RequestID))
	c.JSON(http.StatusCreated, dto.ToBulkOrderResponse(created))
}

// listBulkOrders godoc
// @Summary List bulk-order requests (admin)
// @Description Pages the request inbox newest-first, optionally filtered by status.
// @Tags admin-bulk-orders
// @Produce json
// @Param status query string false "Filter by status (new, contacted, closed)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBulkOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/bulk-orders [get]
func (h *orderHandler) listBulkOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListBulkOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, nextToken, err := h.orderService.ListBulkOrderRequests(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list bulk order requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list requests"})
		return
	}

	resp := dto.ListBulkOrdersResponse{Requests: make([]dto.BulkOrderResponse, len(requests)), NextToken: nextToken}
	for i := range requests {
		resp.Requests[i] = dto.ToBulkOrderResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateBulkOrderStatus godoc
// @Summary Advance a bulk-order request (admin)
// @Description Moves a request forward through its workflow: new -> contacted -> closed. Backward moves are rejected.
// @Tags admin-bulk-orders
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param status body dto.UpdateBulkOrderStatusRequest true "Target status"
// @Success 200 {object} dto.BulkOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 404 {object} ErrorResponse
// @Router /admin/bulk-orders/{id}/status [patch]
func (h *orderHandler) updateBulkOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.UpdateBulkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	updated, err := h.orderService.UpdateStatus(c.Request.Context(), requestID, domain.BulkOrderStatus(req.Status), adminID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Request not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update bulk order status", slog.String("request_id", requestID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update request"})
		}
		return
	}

	logger.Info("Bulk order request updated", slog.String("request_id", requestID), slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.ToBulkOrderResponse(updated))
}
