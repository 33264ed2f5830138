package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	"github.com/bookloft/bookstore_backend/internal/models"
	"github.com/bookloft/bookstore_backend/internal/utils/mapping"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ portsrepo.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	m := mapping.ToModelContactMessage(msg)
	query := `
        INSERT INTO contact_messages (message_id, name, email, subject, message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query, m.MessageID, m.Name, m.Email, m.Subject, m.Message, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListContactMessages(ctx context.Context, params portsrepo.ListParams) ([]domain.ContactMessage, error) {
	query := `SELECT message_id, name, email, subject, message, created_at FROM contact_messages WHERE 1=1`
	args := []any{}
	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.MessageID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", rows.Err())
	}

	return mapping.ToDomainContactMessageSlice(messages), nil
}
