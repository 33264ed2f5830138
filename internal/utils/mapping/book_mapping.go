package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelBook converts a domain Book to a model Book.
func ToModelBook(d domain.Book) models.Book {
	return models.Book{
		BookID:             d.BookID,
		Title:              d.Title,
		Slug:               d.Slug,
		Author:             d.Author,
		Description:        d.Description,
		ISBN:               d.ISBN,
		CoverURL:           d.CoverURL,
		PriceLocal:         d.Price.AmountLocal,
		PriceInternational: d.Price.AmountInternational,
		Stock:              d.Stock,
		Published:          d.Published,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBook converts a model Book to a domain Book.
func ToDomainBook(m models.Book) domain.Book {
	return domain.Book{
		BookID:      m.BookID,
		Title:       m.Title,
		Slug:        m.Slug,
		Author:      m.Author,
		Description: m.Description,
		ISBN:        m.ISBN,
		CoverURL:    m.CoverURL,
		Price: domain.Money{
			AmountLocal:         m.PriceLocal,
			AmountInternational: m.PriceInternational,
		},
		Stock:       m.Stock,
		Published:   m.Published,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBookSlice converts a slice of model Books to domain Books.
func ToDomainBookSlice(ms []models.Book) []domain.Book {
	ds := make([]domain.Book, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBook(m)
	}
	return ds
}
