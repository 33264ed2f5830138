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

const postColumns = `post_id, title, slug, excerpt, content, published, published_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

var _ portsrepo.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) SavePost(ctx context.Context, post domain.Post) error {
	m := mapping.ToModelPost(post)
	query := `
        INSERT INTO posts (` + postColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.PostID, m.Title, m.Slug, m.Excerpt, m.Content, m.Published, m.PublishedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: post slug already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	m := mapping.ToModelPost(post)
	query := `
        UPDATE posts
        SET title = $1, excerpt = $2, content = $3, published = $4, published_at = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE post_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Title, m.Excerpt, m.Content, m.Published, m.PublishedAt,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PostID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PostRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	return r.findPost(ctx, `SELECT `+postColumns+` FROM posts WHERE post_id = $1;`, postID)
}

func (r *PostRepository) FindPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.findPost(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1;`, slug)
}

func (r *PostRepository) findPost(ctx context.Context, query string, arg any) (*domain.Post, error) {
	var m models.Post
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.PostID, &m.Title, &m.Slug, &m.Excerpt, &m.Content, &m.Published, &m.PublishedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	post := mapping.ToDomainPost(m)
	return &post, nil
}

func (r *PostRepository) ListPosts(ctx context.Context, params portsrepo.ListParams) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`
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

	return r.queryPosts(ctx, query, args...)
}

func (r *PostRepository) SearchPosts(ctx context.Context, search string, params portsrepo.ListParams) ([]domain.Post, error) {
	args := []any{search}
	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE to_tsvector('english', title || ' ' || excerpt || ' ' || content) @@ plainto_tsquery('english', $1)`
	if params.OnlyPublished {
		query += ` AND published = TRUE`
	}
	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	return r.queryPosts(ctx, query, args...)
}

func (r *PostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var m models.Post
		err := rows.Scan(
			&m.PostID, &m.Title, &m.Slug, &m.Excerpt, &m.Content, &m.Published, &m.PublishedAt,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", rows.Err())
	}

	return mapping.ToDomainPostSlice(posts), nil
}

func (r *PostRepository) DeletePost(ctx context.Context, postID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE post_id = $1;`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
