package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// OrderSvcFacade exposes bulk-order request operations.
type OrderSvcFacade interface {
	// CreateBulkOrderRequest accepts a storefront submission; new requests
	// always start in the "new" status.
	CreateBulkOrderRequest(ctx context.Context, req dto.CreateBulkOrderRequest) (*domain.BulkOrderRequest, error)
	ListBulkOrderRequests(ctx context.Context, req dto.ListBulkOrdersRequest) ([]domain.BulkOrderRequest, string, error)
	// UpdateStatus enforces the forward-only workflow (new -> contacted -> closed).
	UpdateStatus(ctx context.Context, requestID string, next domain.BulkOrderStatus, updaterUserID string) (*domain.BulkOrderRequest, error)
}
