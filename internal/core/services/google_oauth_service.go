package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

const googleProviderName = "google"

type googleOAuthService struct {
	oauthCfg *oauth2.Config
	userSvc  portssvc.UserSvcFacade
}

// NewGoogleOAuthService wires the Google sign-in flow. The oauth2 config is
// built once at startup from the loaded configuration.
func NewGoogleOAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userSvc: userSvc,
	}
}

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange authorization code", apperrors.ErrUnauthorized)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: token response missing id_token", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthCfg.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id_token", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: id_token carries no email claim", apperrors.ErrUnauthorized)
	}

	user, err := s.userSvc.FindOrCreateOAuthUser(ctx, googleProviderName, payload.Subject, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Google user: %w", err)
	}
	return user, nil
}
