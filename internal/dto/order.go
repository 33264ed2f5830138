package dto

import (
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// CreateBulkOrderRequest is the storefront bulk-order submission.
type CreateBulkOrderRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	BookTitle    string `json:"bookTitle" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=10"`
	Message      string `json:"message"`
}

// UpdateBulkOrderStatusRequest moves a request through its workflow.
type UpdateBulkOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=contacted closed"`
}

// ListBulkOrdersRequest are the admin inbox query parameters.
type ListBulkOrdersRequest struct {
	Status    string `form:"status" binding:"omitempty,oneof=new contacted closed"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// BulkOrderResponse is the admin-facing shape of a bulk-order request.
type BulkOrderResponse struct {
	RequestID    string    `json:"requestID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Organization string    `json:"organization,omitempty"`
	BookTitle    string    `json:"bookTitle"`
	Quantity     int       `json:"quantity"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToBulkOrderResponse converts a domain BulkOrderRequest to its DTO.
func ToBulkOrderResponse(r *domain.BulkOrderRequest) BulkOrderResponse {
	return BulkOrderResponse{
		RequestID:    r.RequestID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Organization: r.Organization,
		BookTitle:    r.BookTitle,
		Quantity:     r.Quantity,
		Message:      r.Message,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}

// ListBulkOrdersResponse wraps a page of requests.
type ListBulkOrdersResponse struct {
	Requests  []BulkOrderResponse `json:"requests"`
	NextToken string              `json:"nextToken,omitempty"`
}
