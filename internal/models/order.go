package models

// BulkOrderRequest is the storage shape of a bulk-order request.
type BulkOrderRequest struct {
	RequestID    string `db:"request_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Organization string `db:"organization"`
	BookTitle    string `db:"book_title"`
	Quantity     int    `db:"quantity"`
	Message      string `db:"message"`
	Status       string `db:"status"`
	AuditFields
}
