package models

// Book is the storage shape of a catalog title. Prices are stored as two
// integer minor-unit columns, one per reference currency.
type Book struct {
	BookID              string `db:"book_id"`
	Title               string `db:"title"`
	Slug                string `db:"slug"`
	Author              string `db:"author"`
	Description         string `db:"description"`
	ISBN                string `db:"isbn"`
	CoverURL            string `db:"cover_url"`
	PriceLocal          int64  `db:"price_local"`
	PriceInternational  int64  `db:"price_international"`
	Stock               int    `db:"stock"`
	Published           bool   `db:"published"`
	AuditFields
}
