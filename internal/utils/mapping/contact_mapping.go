package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelContactMessage converts a domain ContactMessage to its model.
func ToModelContactMessage(d domain.ContactMessage) models.ContactMessage {
	return models.ContactMessage{
		MessageID: d.MessageID,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainContactMessage converts a model ContactMessage to the domain.
func ToDomainContactMessage(m models.ContactMessage) domain.ContactMessage {
	return domain.ContactMessage{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainContactMessageSlice converts model rows to domain values.
func ToDomainContactMessageSlice(ms []models.ContactMessage) []domain.ContactMessage {
	ds := make([]domain.ContactMessage, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContactMessage(m)
	}
	return ds
}
