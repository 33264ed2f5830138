package repositories

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	SavePost(ctx context.Context, post domain.Post) error
	UpdatePost(ctx context.Context, post domain.Post) error
	FindPostByID(ctx context.Context, postID string) (*domain.Post, error)
	FindPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	ListPosts(ctx context.Context, params ListParams) ([]domain.Post, error)
	// SearchPosts runs a full-text query over title, excerpt and content.
	SearchPosts(ctx context.Context, query string, params ListParams) ([]domain.Post, error)
	DeletePost(ctx context.Context, postID string) error
}
