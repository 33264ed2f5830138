package models

import "time"

// Post is the storage shape of a blog post.
type Post struct {
	PostID      string     `db:"post_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	AuditFields
}
