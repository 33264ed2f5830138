package domain

import "time"

// Post represents a blog post in the domain.
type Post struct {
	PostID      string     `json:"postID"` // Primary key (UUID)
	Title       string     `json:"title"`
	Slug        string     `json:"slug"` // URL identifier, unique
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	AuditFields
}
