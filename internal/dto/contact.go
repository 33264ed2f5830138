package dto

import (
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// CreateContactMessageRequest is the storefront contact form submission.
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ListContactMessagesRequest are the admin inbox query parameters.
type ListContactMessagesRequest struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ContactMessageResponse is the admin-facing shape of a contact message.
type ContactMessageResponse struct {
	MessageID string    `json:"messageID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToContactMessageResponse converts a domain ContactMessage to its DTO.
func ToContactMessageResponse(m *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ListContactMessagesResponse wraps a page of messages.
type ListContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	NextToken string                   `json:"nextToken,omitempty"`
}
