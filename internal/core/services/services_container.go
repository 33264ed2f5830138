package services

import (
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

// NewServiceContainer constructs every application service against the given
// repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Book:        NewBookService(repos.BookRepo),
		Post:        NewPostService(repos.PostRepo),
		Order:       NewOrderService(repos.OrderRepo),
		Contact:     NewContactService(repos.ContactRepo),
		FAQ:         NewFAQService(repos.FAQRepo),
		User:        userSvc,
		Token:       NewTokenService(repos.UserRepo, cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg, userSvc),
	}
}
