package repositories

import (
	"context"
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// OrderRepository defines persistence operations for bulk-order requests.
type OrderRepository interface {
	SaveBulkOrderRequest(ctx context.Context, req domain.BulkOrderRequest) error
	FindBulkOrderRequestByID(ctx context.Context, requestID string) (*domain.BulkOrderRequest, error)
	// ListBulkOrderRequests returns requests newest-first; status filters when non-empty.
	ListBulkOrderRequests(ctx context.Context, status domain.BulkOrderStatus, params ListParams) ([]domain.BulkOrderRequest, error)
	UpdateBulkOrderStatus(ctx context.Context, requestID string, status domain.BulkOrderStatus, updatedBy string, updatedAt time.Time) error
}
