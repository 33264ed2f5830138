package repositories

import (
	"context"
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProvider(ctx context.Context, provider, providerUserID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	// UpdateRefreshToken stores the hash of a rotated refresh token; empty
	// hash clears it (logout).
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error
	DeactivateUser(ctx context.Context, userID, updatedBy string, at time.Time) error
}
