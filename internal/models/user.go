package models

import "time"

// User is the storage shape of an account row.
type User struct {
	UserID                 string     `db:"user_id"`
	Email                  string     `db:"email"`
	Name                   string     `db:"name"`
	Role                   string     `db:"role"`
	PasswordHash           string     `db:"password_hash"`
	AuthProvider           string     `db:"auth_provider"`
	ProviderUserID         string     `db:"provider_user_id"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
