package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
	"github.com/bookloft/bookstore_backend/internal/models"
	"github.com/bookloft/bookstore_backend/internal/utils/mapping"
)

const orderColumns = `request_id, name, email, phone, organization, book_title,
	quantity, message, status,
	created_at, created_by, last_updated_at, last_updated_by`

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ portsrepo.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) SaveBulkOrderRequest(ctx context.Context, req domain.BulkOrderRequest) error {
	m := mapping.ToModelBulkOrderRequest(req)
	query := `
        INSERT INTO bulk_order_requests (` + orderColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		m.RequestID, m.Name, m.Email, m.Phone, m.Organization, m.BookTitle,
		m.Quantity, m.Message, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bulk order request: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindBulkOrderRequestByID(ctx context.Context, requestID string) (*domain.BulkOrderRequest, error) {
	query := `SELECT ` + orderColumns + ` FROM bulk_order_requests WHERE request_id = $1;`
	var m models.BulkOrderRequest
	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&m.RequestID, &m.Name, &m.Email, &m.Phone, &m.Organization, &m.BookTitle,
		&m.Quantity, &m.Message, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bulk order request: %w", err)
	}
	req := mapping.ToDomainBulkOrderRequest(m)
	return &req, nil
}

func (r *OrderRepository) ListBulkOrderRequests(ctx context.Context, status domain.BulkOrderStatus, params portsrepo.ListParams) ([]domain.BulkOrderRequest, error) {
	query := `SELECT ` + orderColumns + ` FROM bulk_order_requests WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, string(status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if params.After != nil {
		args = append(args, *params.After)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bulk order requests: %w", err)
	}
	defer rows.Close()

	requests := []models.BulkOrderRequest{}
	for rows.Next() {
		var m models.BulkOrderRequest
		err := rows.Scan(
			&m.RequestID, &m.Name, &m.Email, &m.Phone, &m.Organization, &m.BookTitle,
			&m.Quantity, &m.Message, &m.Status,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bulk order request row: %w", err)
		}
		requests = append(requests, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bulk order request rows: %w", rows.Err())
	}

	return mapping.ToDomainBulkOrderRequestSlice(requests), nil
}

func (r *OrderRepository) UpdateBulkOrderStatus(ctx context.Context, requestID string, status domain.BulkOrderStatus, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE bulk_order_requests
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE request_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(status), updatedAt, updatedBy, requestID)
	if err != nil {
		return fmt.Errorf("failed to update bulk order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
