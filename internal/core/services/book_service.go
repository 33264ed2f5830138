package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/utils/pagination"
)

type bookService struct {
	bookRepo portsrepo.BookRepository
}

// NewBookService creates the catalog-title service.
func NewBookService(bookRepo portsrepo.BookRepository) portssvc.BookSvcFacade {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) CreateBook(ctx context.Context, req dto.CreateBookRequest, creatorUserID string) (*domain.Book, error) {
	now := time.Now()

	book := domain.Book{
		BookID:      uuid.NewString(),
		Title:       req.Title,
		Slug:        req.Slug,
		Author:      req.Author,
		Description: req.Description,
		ISBN:        req.ISBN,
		CoverURL:    req.CoverURL,
		Price: domain.Money{
			AmountLocal:         req.PriceLocal,
			AmountInternational: req.PriceInternational,
		},
		Stock:     req.Stock,
		Published: req.Published,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book in service: %w", err)
	}
	return &book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, bookID string, req dto.UpdateBookRequest, updaterUserID string) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to find book for update: %w", err)
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if req.PriceLocal != nil {
		book.Price.AmountLocal = *req.PriceLocal
	}
	if req.PriceInternational != nil {
		book.Price.AmountInternational = *req.PriceInternational
	}
	if req.Stock != nil {
		book.Stock = *req.Stock
	}
	if req.Published != nil {
		book.Published = *req.Published
	}
	book.LastUpdatedAt = time.Now()
	book.LastUpdatedBy = updaterUserID

	if err := s.bookRepo.UpdateBook(ctx, *book); err != nil {
		return nil, fmt.Errorf("failed to update book in service: %w", err)
	}
	return book, nil
}

func (s *bookService) GetBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get book by ID in service: %w", err)
	}
	return book, nil
}

func (s *bookService) GetBookBySlug(ctx context.Context, slug string, includeUnpublished bool) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get book by slug in service: %w", err)
	}
	// Unpublished titles are invisible to the storefront; report not-found
	// rather than existence.
	if !book.Published && !includeUnpublished {
		return nil, apperrors.ErrNotFound
	}
	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context, req dto.ListBooksRequest, includeUnpublished bool) ([]domain.Book, string, error) {
	params, err := listParamsFrom(req.Limit, req.NextToken, !includeUnpublished)
	if err != nil {
		return nil, "", err
	}

	var books []domain.Book
	if req.Q != "" {
		books, err = s.bookRepo.SearchBooks(ctx, req.Q, params)
	} else {
		books, err = s.bookRepo.ListBooks(ctx, params)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to list books in service: %w", err)
	}

	next := ""
	if len(books) == params.Limit {
		next = pagination.EncodeDateBasedToken(books[len(books)-1].CreatedAt)
	}
	return books, next, nil
}

func (s *bookService) DeleteBook(ctx context.Context, bookID string, deleterUserID string) error {
	if _, err := s.bookRepo.FindBookByID(ctx, bookID); err != nil {
		return fmt.Errorf("failed to find book for delete: %w", err)
	}
	if err := s.bookRepo.DeleteBook(ctx, bookID); err != nil {
		return fmt.Errorf("failed to delete book in service: %w", err)
	}
	return nil
}

// listParamsFrom translates limit/token inputs to repository params.
func listParamsFrom(limit int, nextToken string, onlyPublished bool) (portsrepo.ListParams, error) {
	params := portsrepo.ListParams{OnlyPublished: onlyPublished, Limit: limit}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if nextToken != "" {
		after, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return params, fmt.Errorf("%w: %s", apperrors.ErrValidation, "invalid nextToken")
		}
		params.After = &after
	}
	return params, nil
}
