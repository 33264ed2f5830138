package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// ContactSvcFacade exposes contact form operations.
type ContactSvcFacade interface {
	CreateContactMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error)
	ListContactMessages(ctx context.Context, req dto.ListContactMessagesRequest) ([]domain.ContactMessage, string, error)
}
