package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelFAQ converts a domain FAQ to a model FAQ.
func ToModelFAQ(d domain.FAQ) models.FAQ {
	return models.FAQ{
		FAQID:       d.FAQID,
		Question:    d.Question,
		Answer:      d.Answer,
		Position:    d.Position,
		Published:   d.Published,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFAQ converts a model FAQ to a domain FAQ.
func ToDomainFAQ(m models.FAQ) domain.FAQ {
	return domain.FAQ{
		FAQID:       m.FAQID,
		Question:    m.Question,
		Answer:      m.Answer,
		Position:    m.Position,
		Published:   m.Published,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFAQSlice converts model rows to domain values.
func ToDomainFAQSlice(ms []models.FAQ) []domain.FAQ {
	ds := make([]domain.FAQ, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFAQ(m)
	}
	return ds
}
