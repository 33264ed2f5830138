package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/utils/pagination"
)

type orderService struct {
	orderRepo portsrepo.OrderRepository
}

// NewOrderService creates the bulk-order request service.
func NewOrderService(orderRepo portsrepo.OrderRepository) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) CreateBulkOrderRequest(ctx context.Context, req dto.CreateBulkOrderRequest) (*domain.BulkOrderRequest, error) {
	now := time.Now()

	request := domain.BulkOrderRequest{
		RequestID:    uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		BookTitle:    req.BookTitle,
		Quantity:     req.Quantity,
		Message:      req.Message,
		Status:       domain.BulkOrderStatusNew,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.orderRepo.SaveBulkOrderRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create bulk order request in service: %w", err)
	}
	return &request, nil
}

func (s *orderService) ListBulkOrderRequests(ctx context.Context, req dto.ListBulkOrdersRequest) ([]domain.BulkOrderRequest, string, error) {
	params, err := listParamsFrom(req.Limit, req.NextToken, false)
	if err != nil {
		return nil, "", err
	}

	requests, err := s.orderRepo.ListBulkOrderRequests(ctx, domain.BulkOrderStatus(req.Status), params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list bulk order requests in service: %w", err)
	}

	next := ""
	if len(requests) == params.Limit {
		next = pagination.EncodeDateBasedToken(requests[len(requests)-1].CreatedAt)
	}
	return requests, next, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, requestID string, next domain.BulkOrderStatus, updaterUserID string) (*domain.BulkOrderRequest, error) {
	request, err := s.orderRepo.FindBulkOrderRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bulk order request: %w", err)
	}

	if !request.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move request from %s to %s", apperrors.ErrValidation, request.Status, next)
	}

	now := time.Now()
	if err := s.orderRepo.UpdateBulkOrderStatus(ctx, requestID, next, updaterUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update bulk order status in service: %w", err)
	}

	request.Status = next
	request.LastUpdatedAt = now
	request.LastUpdatedBy = updaterUserID
	return request, nil
}
