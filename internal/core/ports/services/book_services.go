package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// BookSvcFacade exposes catalog-title operations.
type BookSvcFacade interface {
	CreateBook(ctx context.Context, req dto.CreateBookRequest, creatorUserID string) (*domain.Book, error)
	UpdateBook(ctx context.Context, bookID string, req dto.UpdateBookRequest, updaterUserID string) (*domain.Book, error)
	GetBookByID(ctx context.Context, bookID string) (*domain.Book, error)
	// GetBookBySlug serves the storefront; unpublished titles are hidden
	// unless includeUnpublished is set (admin).
	GetBookBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Book, error)
	// ListBooks pages newest-first and runs full-text search when req.Q is
	// non-empty. Returns the next-page token alongside the page.
	ListBooks(ctx context.Context, req dto.ListBooksRequest, includeUnpublished bool) ([]domain.Book, string, error)
	DeleteBook(ctx context.Context, bookID string, deleterUserID string) error
}
