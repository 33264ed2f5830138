package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// FAQSvcFacade exposes FAQ operations.
type FAQSvcFacade interface {
	CreateFAQ(ctx context.Context, req dto.CreateFAQRequest, creatorUserID string) (*domain.FAQ, error)
	UpdateFAQ(ctx context.Context, faqID string, req dto.UpdateFAQRequest, updaterUserID string) (*domain.FAQ, error)
	ListFAQs(ctx context.Context, onlyPublished bool) ([]domain.FAQ, error)
	DeleteFAQ(ctx context.Context, faqID string, deleterUserID string) error
}
