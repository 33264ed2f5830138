package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelBulkOrderRequest converts a domain BulkOrderRequest to its model.
func ToModelBulkOrderRequest(d domain.BulkOrderRequest) models.BulkOrderRequest {
	return models.BulkOrderRequest{
		RequestID:    d.RequestID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Organization: d.Organization,
		BookTitle:    d.BookTitle,
		Quantity:     d.Quantity,
		Message:      d.Message,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBulkOrderRequest converts a model BulkOrderRequest to the domain.
func ToDomainBulkOrderRequest(m models.BulkOrderRequest) domain.BulkOrderRequest {
	return domain.BulkOrderRequest{
		RequestID:    m.RequestID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Organization: m.Organization,
		BookTitle:    m.BookTitle,
		Quantity:     m.Quantity,
		Message:      m.Message,
		Status:       domain.BulkOrderStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBulkOrderRequestSlice converts model rows to domain values.
func ToDomainBulkOrderRequestSlice(ms []models.BulkOrderRequest) []domain.BulkOrderRequest {
	ds := make([]domain.BulkOrderRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBulkOrderRequest(m)
	}
	return ds
}
