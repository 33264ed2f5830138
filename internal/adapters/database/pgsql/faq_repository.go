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

const faqColumns = `faq_id, question, answer, position, published,
	created_at, created_by, last_updated_at, last_updated_by`

type FAQRepository struct {
	db *pgxpool.Pool
}

func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{db: db}
}

var _ portsrepo.FAQRepository = (*FAQRepository)(nil)

func (r *FAQRepository) SaveFAQ(ctx context.Context, faq domain.FAQ) error {
	m := mapping.ToModelFAQ(faq)
	query := `
        INSERT INTO faqs (` + faqColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.FAQID, m.Question, m.Answer, m.Position, m.Published,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save FAQ: %w", err)
	}
	return nil
}

func (r *FAQRepository) UpdateFAQ(ctx context.Context, faq domain.FAQ) error {
	m := mapping.ToModelFAQ(faq)
	query := `
        UPDATE faqs
        SET question = $1, answer = $2, position = $3, published = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE faq_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Question, m.Answer, m.Position, m.Published,
		m.LastUpdatedAt, m.LastUpdatedBy, m.FAQID,
	)
	if err != nil {
		return fmt.Errorf("failed to update FAQ: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) FindFAQByID(ctx context.Context, faqID string) (*domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE faq_id = $1;`
	var m models.FAQ
	err := r.db.QueryRow(ctx, query, faqID).Scan(
		&m.FAQID, &m.Question, &m.Answer, &m.Position, &m.Published,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find FAQ: %w", err)
	}
	faq := mapping.ToDomainFAQ(m)
	return &faq, nil
}

func (r *FAQRepository) ListFAQs(ctx context.Context, onlyPublished bool) ([]domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY position ASC, created_at ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query FAQs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var m models.FAQ
		err := rows.Scan(
			&m.FAQID, &m.Question, &m.Answer, &m.Position, &m.Published,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan FAQ row: %w", err)
		}
		faqs = append(faqs, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating FAQ rows: %w", rows.Err())
	}

	return mapping.ToDomainFAQSlice(faqs), nil
}

func (r *FAQRepository) DeleteFAQ(ctx context.Context, faqID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE faq_id = $1;`, faqID)
	if err != nil {
		return fmt.Errorf("failed to delete FAQ: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
