package dto

import (
	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// CreateFAQRequest defines the data needed to create an FAQ entry.
type CreateFAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	Position  int    `json:"position" binding:"min=0"`
	Published bool   `json:"published"`
}

// UpdateFAQRequest carries partial updates; nil fields are left untouched.
type UpdateFAQRequest struct {
	Question  *string `json:"question,omitempty"`
	Answer    *string `json:"answer,omitempty"`
	Position  *int    `json:"position,omitempty" binding:"omitempty,min=0"`
	Published *bool   `json:"published,omitempty"`
}

// FAQResponse is the public shape of an FAQ entry.
type FAQResponse struct {
	FAQID     string `json:"faqID"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
}

// ToFAQResponse converts a domain FAQ to its DTO.
func ToFAQResponse(f *domain.FAQ) FAQResponse {
	return FAQResponse{
		FAQID:     f.FAQID,
		Question:  f.Question,
		Answer:    f.Answer,
		Position:  f.Position,
		Published: f.Published,
	}
}

// ToListFAQResponse converts a slice of domain FAQs to DTOs.
func ToListFAQResponse(faqs []domain.FAQ) []FAQResponse {
	res := make([]FAQResponse, len(faqs))
	for i := range faqs {
		res[i] = ToFAQResponse(&faqs[i])
	}
	return res
}
