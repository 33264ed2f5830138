package mapping

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	"github.com/bookloft/bookstore_backend/internal/models"
)

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Email:                  d.Email,
		Name:                   d.Name,
		Role:                   string(d.Role),
		PasswordHash:           d.PasswordHash,
		AuthProvider:           d.AuthProvider,
		ProviderUserID:         d.ProviderUserID,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Email:                  m.Email,
		Name:                   m.Name,
		Role:                   domain.Role(m.Role),
		PasswordHash:           m.PasswordHash,
		AuthProvider:           m.AuthProvider,
		ProviderUserID:         m.ProviderUserID,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		DeletedAt:              m.DeletedAt,
	}
}

// ToDomainUserSlice converts model rows to domain values.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
