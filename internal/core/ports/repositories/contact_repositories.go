package repositories

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error
	ListContactMessages(ctx context.Context, params ListParams) ([]domain.ContactMessage, error)
}
