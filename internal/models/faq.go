package models

// FAQ is the storage shape of an FAQ entry.
type FAQ struct {
	FAQID     string `db:"faq_id"`
	Question  string `db:"question"`
	Answer    string `db:"answer"`
	Position  int    `db:"position"`
	Published bool   `db:"published"`
	AuditFields
}
