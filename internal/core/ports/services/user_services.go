package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// UserSvcFacade exposes account operations. Registration always yields the
// member role; the admin role is only ever granted out of band.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindOrCreateOAuthUser links or creates a member account for an
	// external identity.
	FindOrCreateOAuthUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	DeactivateUser(ctx context.Context, userID, updaterUserID string) error
}
