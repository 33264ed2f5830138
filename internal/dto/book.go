package dto

import (
	"time"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// CreateBookRequest defines the data needed to create a catalog title.
// Prices are integer minor units, one per reference currency.
type CreateBookRequest struct {
	Title              string `json:"title" binding:"required"`
	Slug               string `json:"slug" binding:"required,lowercase"`
	Author             string `json:"author" binding:"required"`
	Description        string `json:"description"`
	ISBN               string `json:"isbn"`
	CoverURL           string `json:"coverURL" binding:"omitempty,url"`
	PriceLocal         int64  `json:"priceLocal" binding:"min=0"`
	PriceInternational int64  `json:"priceInternational" binding:"min=0"`
	Stock              int    `json:"stock" binding:"min=0"`
	Published          bool   `json:"published"`
}

// UpdateBookRequest carries partial updates; nil fields are left untouched.
type UpdateBookRequest struct {
	Title              *string `json:"title,omitempty"`
	Author             *string `json:"author,omitempty"`
	Description        *string `json:"description,omitempty"`
	ISBN               *string `json:"isbn,omitempty"`
	CoverURL           *string `json:"coverURL,omitempty" binding:"omitempty,url"`
	PriceLocal         *int64  `json:"priceLocal,omitempty" binding:"omitempty,min=0"`
	PriceInternational *int64  `json:"priceInternational,omitempty" binding:"omitempty,min=0"`
	Stock              *int    `json:"stock,omitempty" binding:"omitempty,min=0"`
	Published          *bool   `json:"published,omitempty"`
}

// ListBooksRequest are the query parameters of the listing endpoint.
type ListBooksRequest struct {
	Q         string `form:"q"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// BookResponse is the storefront shape of a title; the price is already
// formatted for the caller's resolved currency.
type BookResponse struct {
	BookID      string        `json:"bookID"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Author      string        `json:"author"`
	Description string        `json:"description,omitempty"`
	ISBN        string        `json:"isbn,omitempty"`
	CoverURL    string        `json:"coverURL,omitempty"`
	Price       PriceResponse `json:"price"`
	InStock     bool          `json:"inStock"`
	Published   bool          `json:"published"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// ToBookResponse converts a domain Book plus its formatted price to the DTO.
func ToBookResponse(b *domain.Book, price PriceResponse) BookResponse {
	return BookResponse{
		BookID:      b.BookID,
		Title:       b.Title,
		Slug:        b.Slug,
		Author:      b.Author,
		Description: b.Description,
		ISBN:        b.ISBN,
		CoverURL:    b.CoverURL,
		Price:       price,
		InStock:     b.Stock > 0,
		Published:   b.Published,
		CreatedAt:   b.CreatedAt,
	}
}

// ListBooksResponse wraps a page of books with the token for the next page.
type ListBooksResponse struct {
	Books     []BookResponse `json:"books"`
	NextToken string         `json:"nextToken,omitempty"`
}
