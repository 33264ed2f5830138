package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

func TestFormat_PicksAmountByRegion(t *testing.T) {
	r := newTestResolver()
	money := domain.Money{AmountLocal: 150000, AmountInternational: 2500}

	domestic := r.Resolve(Signals{Explicit: "INR"})
	d, err := Format(money, domestic)
	require.NoError(t, err)
	assert.Equal(t, "₹1,500.00", d.Formatted)
	assert.Equal(t, "1500", d.Value.String())

	international := r.Resolve(Signals{Explicit: "USD"})
	d, err = Format(money, international)
	require.NoError(t, err)
	assert.Equal(t, "$25.00", d.Formatted)
	assert.Equal(t, "25", d.Value.String())
}

func TestFormat_Grouping(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name  string
		code  string
		money domain.Money
		want  string
	}{
		{"indian lakh grouping", "INR", domain.Money{AmountLocal: 12345678900, AmountInternational: 0}, "₹12,34,56,789.00"},
		{"indian small amount", "INR", domain.Money{AmountLocal: 9900, AmountInternational: 0}, "₹99.00"},
		{"indian exactly a thousand", "INR", domain.Money{AmountLocal: 100000, AmountInternational: 0}, "₹1,000.00"},
		{"western grouping", "USD", domain.Money{AmountLocal: 0, AmountInternational: 123456789}, "$1,234,567.89"},
		{"western small amount", "USD", domain.Money{AmountLocal: 0, AmountInternational: 5}, "$0.05"},
		{"zero", "USD", domain.Money{}, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := r.Resolve(Signals{Explicit: tt.code})
			d, err := Format(tt.money, resolved)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Formatted)
		})
	}
}

func TestFormat_InvalidMoney(t *testing.T) {
	r := newTestResolver()
	resolved := r.Resolve(Signals{})

	for _, money := range []domain.Money{
		{AmountLocal: -1, AmountInternational: 100},
		{AmountLocal: 100, AmountInternational: -1},
	} {
		_, err := Format(money, resolved)
		assert.ErrorIs(t, err, apperrors.ErrInvalidMoney)
	}
}

func TestFormat_IsDeterministic(t *testing.T) {
	r := newTestResolver()
	resolved := r.Resolve(Signals{CountryCode: "IN"})
	money := domain.Money{AmountLocal: 75999, AmountInternational: 1299}

	first, err := Format(money, resolved)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Format(money, resolved)
		require.NoError(t, err)
		assert.Equal(t, first.Formatted, again.Formatted)
		assert.True(t, first.Value.Equal(again.Value))
	}
}
