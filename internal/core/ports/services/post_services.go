package services

import (
	"context"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/dto"
)

// PostSvcFacade exposes blog post operations.
type PostSvcFacade interface {
	CreatePost(ctx context.Context, req dto.CreatePostRequest, creatorUserID string) (*domain.Post, error)
	UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest, updaterUserID string) (*domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Post, error)
	ListPosts(ctx context.Context, req dto.ListPostsRequest, includeUnpublished bool) ([]domain.Post, string, error)
	DeletePost(ctx context.Context, postID string, deleterUserID string) error
}
