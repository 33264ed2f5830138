package domain

import "time"

// User represents an account in the domain. Administrators are regular users
// with the admin role; the role is never granted through registration.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`

	// OAuth identity, set when the account was created via a provider.
	AuthProvider   string `json:"authProvider,omitempty"` // e.g. "google"
	ProviderUserID string `json:"-"`

	// Refresh token state. Only the SHA-256 hash of the token is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
