package repositories

import "time"

// RepositoryProvider aggregates all repositories for injection into the
// service container.
type RepositoryProvider struct {
	BookRepo    BookRepository
	PostRepo    PostRepository
	OrderRepo   OrderRepository
	ContactRepo ContactRepository
	FAQRepo     FAQRepository
	UserRepo    UserRepository
}

// ListParams are the common keyset-pagination inputs for list queries.
// After, when set, restricts results to rows created strictly before it
// (listings are newest-first).
type ListParams struct {
	OnlyPublished bool
	Limit         int
	After         *time.Time
}
