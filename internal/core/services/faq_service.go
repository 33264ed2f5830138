package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

type faqService struct {
	faqRepo portsrepo.FAQRepository
}

// NewFAQService creates the FAQ service.
func NewFAQService(faqRepo portsrepo.FAQRepository) portssvc.FAQSvcFacade {
	return &faqService{faqRepo: faqRepo}
}

func (s *faqService) CreateFAQ(ctx context.Context, req dto.CreateFAQRequest, creatorUserID string) (*domain.FAQ, error) {
	now := time.Now()

	faq := domain.FAQ{
		FAQID:     uuid.NewString(),
		Question:  req.Question,
		Answer:    req.Answer,
		Position:  req.Position,
		Published: req.Published,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.faqRepo.SaveFAQ(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to create FAQ in service: %w", err)
	}
	return &faq, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, faqID string, req dto.UpdateFAQRequest, updaterUserID string) (*domain.FAQ, error) {
	faq, err := s.faqRepo.FindFAQByID(ctx, faqID)
	if err != nil {
		return nil, fmt.Errorf("failed to find FAQ for update: %w", err)
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Position != nil {
		faq.Position = *req.Position
	}
	if req.Published != nil {
		faq.Published = *req.Published
	}
	faq.LastUpdatedAt = time.Now()
	faq.LastUpdatedBy = updaterUserID

	if err := s.faqRepo.UpdateFAQ(ctx, *faq); err != nil {
		return nil, fmt.Errorf("failed to update FAQ in service: %w", err)
	}
	return faq, nil
}

func (s *faqService) ListFAQs(ctx context.Context, onlyPublished bool) ([]domain.FAQ, error) {
	faqs, err := s.faqRepo.ListFAQs(ctx, onlyPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQs in service: %w", err)
	}
	if faqs == nil {
		return []domain.FAQ{}, nil
	}
	return faqs, nil
}

func (s *faqService) DeleteFAQ(ctx context.Context, faqID string, deleterUserID string) error {
	if _, err := s.faqRepo.FindFAQByID(ctx, faqID); err != nil {
		return fmt.Errorf("failed to find FAQ for delete: %w", err)
	}
	if err := s.faqRepo.DeleteFAQ(ctx, faqID); err != nil {
		return fmt.Errorf("failed to delete FAQ in service: %w", err)
	}
	return nil
}
