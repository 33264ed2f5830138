package repositories

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// BookRepository defines persistence operations for catalog titles.
type BookRepository interface {
	SaveBook(ctx context.Context, book domain.Book) error
	UpdateBook(ctx context.Context, book domain.Book) error
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)
	FindBookBySlug(ctx context.Context, slug string) (*domain.Book, error)
	// ListBooks returns books newest-first, honoring the pagination params.
	ListBooks(ctx context.Context, params ListParams) ([]domain.Book, error)
	// SearchBooks runs a full-text query over title, author and description.
	SearchBooks(ctx context.Context, query string, params ListParams) ([]domain.Book, error)
	DeleteBook(ctx context.Context, bookID string) error
}
