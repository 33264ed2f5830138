package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelPost converts a domain Post to a model Post.
func ToModelPost(d domain.Post) models.Post {
	return models.Post{
		PostID:      d.PostID,
		Title:       d.Title,
		Slug:        d.Slug,
		Excerpt:     d.Excerpt,
		Content:     d.Content,
		Published:   d.Published,
		PublishedAt: d.PublishedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPost converts a model Post to a domain Post.
func ToDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:      m.PostID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Published:   m.Published,
		PublishedAt: m.PublishedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPostSlice converts a slice of model Posts to domain Posts.
func ToDomainPostSlice(ms []models.Post) []domain.Post {
	ds := make([]domain.Post, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPost(m)
	}
	return ds
}
