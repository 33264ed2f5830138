package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	"github.com/bookloft/bookstore_backend/internal/models"
	"github.com/bookloft/bookstore_backend/internal/utils/mapping"
)

const bookColumns = `book_id, title, slug, author, description, isbn, cover_url,
	price_local, price_international, stock, published,
	created_at, created_by, last_updated_at, last_updated_by`

type BookRepository struct {
	db *pgxpool.Pool
}

func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{db: db}
}

var _ portsrepo.BookRepository = (*BookRepository)(nil)

func (r *BookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	m := mapping.ToModelBook(book)
	query := `
        INSERT INTO books (` + bookColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		m.BookID, m.Title, m.Slug, m.Author, m.Description, m.ISBN, m.CoverURL,
		m.PriceLocal, m.PriceInternational, m.Stock, m.Published,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: book slug already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

func (r *BookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	m := mapping.ToModelBook(book)
	query := `
        UPDATE books
        SET title = $1, author = $2, description = $3, isbn = $4, cover_url = $5,
            price_local = $6, price_international = $7, stock = $8, published = $9,
            last_updated_at = $10, last_updated_by = $11
        WHERE book_id = $12;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title, m.Author, m.Description, m.ISBN, m.CoverURL,
		m.PriceLocal, m.PriceInternational, m.Stock, m.Published,
		m.LastUpdatedAt, m.LastUpdatedBy, m.BookID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	return r.findBook(ctx, `SELECT `+bookColumns+` FROM books WHERE book_id = $1;`, bookID)
}

func (r *BookRepository) FindBookBySlug(ctx context.Context, slug string) (*domain.Book, error) {
	return r.findBook(ctx, `SELECT `+bookColumns+` FROM books WHERE slug = $1;`, slug)
}

func (r *BookRepository) findBook(ctx context.Context, query string, arg any) (*domain.Book, error) {
	var m models.Book
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.BookID, &m.Title, &m.Slug, &m.Author, &m.Description, &m.ISBN, &m.CoverURL,
		&m.PriceLocal, &m.PriceInternational, &m.Stock, &m.Published,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	book := mapping.ToDomainBook(m)
	return &book, nil
}

func (r *BookRepository) ListBooks(ctx context.Context, params portsrepo.ListParams) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE 1=1`
	args := []any{}
	if params.OnlyPublished {
		query += ` AND published = TRUE`
	}
	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	return r.queryBooks(ctx, query, args...)
}

func (r *BookRepository) SearchBooks(ctx context.Context, search string, params portsrepo.ListParams) ([]domain.Book, error) {
	args := []any{search}
	query := `
        SELECT ` + bookColumns + `
        FROM books
        WHERE to_tsvector('english', title || ' ' || author || ' ' || description) @@ plainto_tsquery('english', $1)`
	if params.OnlyPublished {
		query += ` AND published = TRUE`
	}
	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	return r.queryBooks(ctx, query, args...)
}

func (r *BookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]domain.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var m models.Book
		err := rows.Scan(
			&m.BookID, &m.Title, &m.Slug, &m.Author, &m.Description, &m.ISBN, &m.CoverURL,
			&m.PriceLocal, &m.PriceInternational, &m.Stock, &m.Published,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", rows.Err())
	}

	return mapping.ToDomainBookSlice(books), nil
}

func (r *BookRepository) DeleteBook(ctx context.Context, bookID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE book_id = $1;`, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
