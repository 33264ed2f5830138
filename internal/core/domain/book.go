package domain

// Book represents a catalog title in the domain.
type Book struct {
	BookID      string `json:"bookID"` // Primary key (UUID)
	Title       string `json:"title"`
	Slug        string `json:"slug"` // URL identifier, unique
	Author      string `json:"author"`
	Description string `json:"description"`
	ISBN        string `json:"isbn,omitempty"`
	CoverURL    string `json:"coverURL,omitempty"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
	Published   bool   `json:"published"`
	AuditFields
}
