package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// GoogleOAuthSvcFacade handles the Google sign-in exchange.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the consent-screen redirect for the given
	// anti-forgery state.
	AuthCodeURL(state string) string
	// HandleCallback exchanges the code, validates the ID token and returns
	// the linked (or newly created) member user.
	HandleCallback(ctx context.Context, code string) (*domain.User, error)
}
