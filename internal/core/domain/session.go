package domain

import "time"

// Role is the authorization role carried by a session.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Session is the resolved identity of the caller for a single request. It is
// derived from the auth store's tokens and never persisted server-side.
type Session struct {
	UserID    string    `json:"userID"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
