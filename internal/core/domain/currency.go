package domain

// Region classifies a currency as belonging to the primary market or to the
// single international reference market.
type Region string

const (
	RegionDomestic      Region = "domestic"
	RegionInternational Region = "international"
)

// Grouping selects the digit-grouping convention used when formatting
// amounts in a currency.
type Grouping string

const (
	// GroupingWestern groups digits in threes (1,234,567.00).
	GroupingWestern Grouping = "western"
	// GroupingIndian groups the last three digits, then twos (12,34,567.00).
	GroupingIndian Grouping = "indian"
)

// Currency represents a supported display currency. The catalog of
// currencies is static and loaded once at process start.
type Currency struct {
	CurrencyCode string   `json:"currencyCode"` // e.g. "INR"
	Name         string   `json:"name"`         // e.g. "Indian Rupee"
	Symbol       string   `json:"symbol"`       // e.g. "₹"
	Region       Region   `json:"region"`
	Grouping     Grouping `json:"-"`
	IsDefault    bool     `json:"isDefault"`
}
