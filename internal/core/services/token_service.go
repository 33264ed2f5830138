package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
	"github.com/bookloft/bookstore_backend/internal/utils"
)

const refreshTokenByteLength = 32

type tokenService struct {
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

// NewTokenService creates the session token service.
func NewTokenService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{userRepo: userRepo, cfg: cfg}
}

func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPair, error) {
	now := time.Now()

	accessToken, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateSecureRandomString(refreshTokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshExpiry := now.Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, &refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token hash: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

func (s *tokenService) Refresh(ctx context.Context, userID, refreshToken string) (*domain.User, *dto.TokenPair, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user for refresh: %w", err)
	}

	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, nil, apperrors.ErrRefreshTokenExpired
	}

	pair, err := s.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rotate token pair: %w", err)
	}
	return user, pair, nil
}

func (s *tokenService) Invalidate(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
