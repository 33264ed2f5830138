package dto

import (
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// CreatePostRequest defines the data needed to create a blog post.
type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required,lowercase"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

// UpdatePostRequest carries partial updates; nil fields are left untouched.
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Excerpt   *string `json:"excerpt,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// ListPostsRequest are the query parameters of the listing endpoint.
type ListPostsRequest struct {
	Q         string `form:"q"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// PostResponse is the public shape of a blog post.
type PostResponse struct {
	PostID      string     `json:"postID"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToPostResponse converts a domain Post to its DTO. Listing endpoints strip
// the content; detail endpoints keep it.
func ToPostResponse(p *domain.Post, includeContent bool) PostResponse {
	resp := PostResponse{
		PostID:      p.PostID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
	if includeContent {
		resp.Content = p.Content
	}
	return resp
}

// ListPostsResponse wraps a page of posts with the token for the next page.
type ListPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	NextToken string         `json:"nextToken,omitempty"`
}
