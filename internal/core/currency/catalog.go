package currency

import (
	"fmt"
	"strings"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// Catalog is the static table of supported currencies. It is built once at
// process start and is immutable afterwards, so concurrent reads need no
// locking.
type Catalog struct {
	currencies []domain.Currency
	byCode     map[string]domain.Currency
	byRegion   map[domain.Region]domain.Currency
	def        domain.Currency
}

// NewCatalog validates and builds a catalog. Codes must be unique and
// exactly one currency must be the default.
func NewCatalog(currencies []domain.Currency) (*Catalog, error) {
	if len(currencies) == 0 {
		return nil, fmt.Errorf("currency catalog cannot be empty")
	}

	c := &Catalog{
		currencies: make([]domain.Currency, len(currencies)),
		byCode:     make(map[string]domain.Currency, len(currencies)),
		byRegion:   make(map[domain.Region]domain.Currency, 2),
	}
	copy(c.currencies, currencies)

	defaults := 0
	for _, curr := range c.currencies {
		code := strings.ToUpper(curr.CurrencyCode)
		if _, exists := c.byCode[code]; exists {
			return nil, fmt.Errorf("duplicate currency code %q in catalog", code)
		}
		c.byCode[code] = curr
		// First currency of a region class is the reference for that class.
		if _, exists := c.byRegion[curr.Region]; !exists {
			c.byRegion[curr.Region] = curr
		}
		if curr.IsDefault {
			defaults++
			c.def = curr
		}
	}
	if defaults != 1 {
		return nil, fmt.Errorf("currency catalog must have exactly one default, got %d", defaults)
	}
	return c, nil
}

// NewDefaultCatalog builds the catalog the storefront ships with: INR as the
// domestic default and USD as the international reference.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog([]domain.Currency{
		{
			CurrencyCode: "INR",
			Name:         "Indian Rupee",
			Symbol:       "₹",
			Region:       domain.RegionDomestic,
			Grouping:     domain.GroupingIndian,
			IsDefault:    true,
		},
		{
			CurrencyCode: "USD",
			Name:         "US Dollar",
			Symbol:       "$",
			Region:       domain.RegionInternational,
			Grouping:     domain.GroupingWestern,
		},
	})
	if err != nil {
		// The built-in catalog is a compile-time constant in all but syntax;
		// a failure here is a programming error.
		panic(err)
	}
	return c
}

// Lookup finds a currency by code, case-insensitively.
func (c *Catalog) Lookup(code string) (domain.Currency, bool) {
	curr, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return curr, ok
}

// Default returns the catalog's default currency.
func (c *Catalog) Default() domain.Currency {
	return c.def
}

// ForRegion returns the reference currency of a region class. Falls back to
// the default when the class has no reference.
func (c *Catalog) ForRegion(region domain.Region) domain.Currency {
	if curr, ok := c.byRegion[region]; ok {
		return curr
	}
	return c.def
}

// List returns the catalog contents in declaration order.
func (c *Catalog) List() []domain.Currency {
	out := make([]domain.Currency, len(c.currencies))
	copy(out, c.currencies)
	return out
}
