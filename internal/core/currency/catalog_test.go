package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

func TestNewDefaultCatalog(t *testing.T) {
	c := NewDefaultCatalog()

	assert.Equal(t, "INR", c.Default().CurrencyCode)
	assert.Equal(t, domain.RegionDomestic, c.Default().Region)

	intl := c.ForRegion(domain.RegionInternational)
	assert.Equal(t, "USD", intl.CurrencyCode)

	assert.Len(t, c.List(), 2)
}

func TestNewCatalog_Invariants(t *testing.T) {
	inr := domain.Currency{CurrencyCode: "INR", Region: domain.RegionDomestic, IsDefault: true}
	usd := domain.Currency{CurrencyCode: "USD", Region: domain.RegionInternational}

	t.Run("empty", func(t *testing.T) {
		_, err := NewCatalog(nil)
		require.Error(t, err)
	})

	t.Run("no default", func(t *testing.T) {
		_, err := NewCatalog([]domain.Currency{usd})
		require.Error(t, err)
	})

	t.Run("two defaults", func(t *testing.T) {
		usd2 := usd
		usd2.IsDefault = true
		_, err := NewCatalog([]domain.Currency{inr, usd2})
		require.Error(t, err)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := NewCatalog([]domain.Currency{inr, {CurrencyCode: "inr", Region: domain.RegionDomestic}})
		require.Error(t, err)
	})
}

func TestCatalog_LookupIsCaseInsensitive(t *testing.T) {
	c := NewDefaultCatalog()

	for _, code := range []string{"INR", "inr", "Inr", " inr "} {
		curr, ok := c.Lookup(code)
		require.True(t, ok, "code %q should resolve", code)
		assert.Equal(t, "INR", curr.CurrencyCode)
	}

	_, ok := c.Lookup("XYZ")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}
