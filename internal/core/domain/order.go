package domain

// BulkOrderStatus tracks the handling of a bulk-order request.
type BulkOrderStatus string

const (
	BulkOrderStatusNew       BulkOrderStatus = "new"
	BulkOrderStatusContacted BulkOrderStatus = "contacted"
	BulkOrderStatusClosed    BulkOrderStatus = "closed"
)

// BulkOrderRequest is an inbound request for a bulk purchase, submitted from
// the storefront and worked by administrators.
type BulkOrderRequest struct {
	RequestID    string          `json:"requestID"` // Primary key (UUID)
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Organization string          `json:"organization,omitempty"`
	BookTitle    string          `json:"bookTitle"`
	Quantity     int             `json:"quantity"`
	Message      string          `json:"message,omitempty"`
	Status       BulkOrderStatus `json:"status"`
	AuditFields
}

// CanTransitionTo reports whether the status change is allowed. Requests move
// forward only: new -> contacted -> closed (closing directly is allowed).
func (r BulkOrderRequest) CanTransitionTo(next BulkOrderStatus) bool {
	switch r.Status {
	case BulkOrderStatusNew:
		return next == BulkOrderStatusContacted || next == BulkOrderStatusClosed
	case BulkOrderStatusContacted:
		return next == BulkOrderStatusClosed
	default:
		return false
	}
}
