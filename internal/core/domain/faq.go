package domain

// FAQ is a single question/answer entry, ordered by Position on the
// storefront FAQ page.
type FAQ struct {
	FAQID     string `json:"faqID"` // Primary key (UUID)
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
	AuditFields
}
