package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// TokenSvcFacade owns the session token lifecycle: issuing access/refresh
// pairs, the single refresh attempt the session resolver is allowed, and
// invalidation on sign-out.
type TokenSvcFacade interface {
	// IssueTokenPair creates an access token and a rotated refresh token,
	// persisting the refresh token's hash on the user row.
	IssueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPair, error)
	// Refresh validates the raw refresh token for the user, rotates it and
	// returns the user with a fresh pair. Invalid or expired refresh tokens
	// yield apperrors.ErrUnauthorized / ErrRefreshTokenExpired.
	Refresh(ctx context.Context, userID, refreshToken string) (*domain.User, *dto.TokenPair, error)
	// Invalidate clears the stored refresh token (sign-out).
	Invalidate(ctx context.Context, userID string) error
}
