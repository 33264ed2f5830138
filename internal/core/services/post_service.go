package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/utils/pagination"
)

type postService struct {
	postRepo portsrepo.PostRepository
}

// NewPostService creates the blog post service.
func NewPostService(postRepo portsrepo.PostRepository) portssvc.PostSvcFacade {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(ctx context.Context, req dto.CreatePostRequest, creatorUserID string) (*domain.Post, error) {
	now := time.Now()

	post := domain.Post{
		PostID:    uuid.NewString(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Published: req.Published,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Published {
		post.PublishedAt = &now
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post in service: %w", err)
	}
	return &post, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest, updaterUserID string) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find post for update: %w", err)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	now := time.Now()
	if req.Published != nil {
		// First publication stamps PublishedAt; unpublishing keeps it.
		if *req.Published && !post.Published {
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}
	post.LastUpdatedAt = now
	post.LastUpdatedBy = updaterUserID

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		return nil, fmt.Errorf("failed to update post in service: %w", err)
	}
	return post, nil
}

func (s *postService) GetPostBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Post, error) {
	post, err := s.postRepo.FindPostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug in service: %w", err)
	}
	if !post.Published && !includeUnpublished {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, req dto.ListPostsRequest, includeUnpublished bool) ([]domain.Post, string, error) {
	params, err := listParamsFrom(req.Limit, req.NextToken, !includeUnpublished)
	if err != nil {
		return nil, "", err
	}

	var posts []domain.Post
	if req.Q != "" {
		posts, err = s.postRepo.SearchPosts(ctx, req.Q, params)
	} else {
		posts, err = s.postRepo.ListPosts(ctx, params)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to list posts in service: %w", err)
	}

	next := ""
	if len(posts) == params.Limit {
		next = pagination.EncodeDateBasedToken(posts[len(posts)-1].CreatedAt)
	}
	return posts, next, nil
}

func (s *postService) DeletePost(ctx context.Context, postID string, deleterUserID string) error {
	if _, err := s.postRepo.FindPostByID(ctx, postID); err != nil {
		return fmt.Errorf("failed to find post for delete: %w", err)
	}
	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post in service: %w", err)
	}
	return nil
}
