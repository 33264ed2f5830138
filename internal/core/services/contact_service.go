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
	"github.com/bookloft/bookstore_backend/internal/utils/pagination"
)

type contactService struct {
	contactRepo portsrepo.ContactRepository
}

// NewContactService creates the contact form service.
func NewContactService(contactRepo portsrepo.ContactRepository) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateContactMessage(ctx context.Context, req dto.CreateContactMessageRequest) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message in service: %w", err)
	}
	return &msg, nil
}

func (s *contactService) ListContactMessages(ctx context.Context, req dto.ListContactMessagesRequest) ([]domain.ContactMessage, string, error) {
	params, err := listParamsFrom(req.Limit, req.NextToken, false)
	if err != nil {
		return nil, "", err
	}

	messages, err := s.contactRepo.ListContactMessages(ctx, params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list contact messages in service: %w", err)
	}

	next := ""
	if len(messages) == params.Limit {
		next = pagination.EncodeDateBasedToken(messages[len(messages)-1].CreatedAt)
	}
	return messages, next, nil
}
