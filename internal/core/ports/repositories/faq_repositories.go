package repositories

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// FAQRepository defines persistence operations for FAQ entries.
type FAQRepository interface {
	SaveFAQ(ctx context.Context, faq domain.FAQ) error
	UpdateFAQ(ctx context.Context, faq domain.FAQ) error
	FindFAQByID(ctx context.Context, faqID string) (*domain.FAQ, error)
	// ListFAQs returns entries ordered by position.
	ListFAQs(ctx context.Context, onlyPublished bool) ([]domain.FAQ, error)
	DeleteFAQ(ctx context.Context, faqID string) error
}
