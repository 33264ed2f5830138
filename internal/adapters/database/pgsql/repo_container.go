package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/bookloft/bookstore_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		BookRepo:    NewBookRepository(pool),
		PostRepo:    NewPostRepository(pool),
		OrderRepo:   NewOrderRepository(pool),
		ContactRepo: NewContactRepository(pool),
		FAQRepo:     NewFAQRepository(pool),
		UserRepo:    NewUserRepository(pool),
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
