package currency

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// minorUnitsPerMajor is fixed for both reference currencies (paise, cents).
const minorUnitsPerMajor = 100

// Display is a price ready for presentation.
type Display struct {
	Value     decimal.Decimal // major units, e.g. 1500.00
	Formatted string          // e.g. "₹1,500.00"
}

// Format picks the stored amount matching the resolved currency's region
// class, converts minor to major units and renders it with the currency's own
// conventions (symbol placement, grouping). It never converts across rates:
// the two stored amounts are already pre-priced. A negative stored amount is
// reported as apperrors.ErrInvalidMoney; callers show a placeholder for it.
func Format(m domain.Money, resolved Resolved) (Display, error) {
	if !m.Valid() {
		return Display{}, apperrors.ErrInvalidMoney
	}

	amount := m.AmountFor(resolved.Currency.Region)
	value := decimal.NewFromInt(amount).Shift(-2)

	return Display{
		Value:     value,
		Formatted: resolved.Currency.Symbol + groupDigits(value, resolved.Currency.Grouping),
	}, nil
}

// groupDigits renders a non-negative decimal with two fraction digits and the
// requested digit grouping.
func groupDigits(value decimal.Decimal, grouping domain.Grouping) string {
	fixed := value.StringFixed(2) // e.g. "1500.00"
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped string
	switch grouping {
	case domain.GroupingIndian:
		grouped = groupIndian(intPart)
	default:
		grouped = groupWestern(intPart)
	}
	return grouped + "." + fracPart
}

// groupWestern inserts a separator every three digits: 1234567 -> 1,234,567.
func groupWestern(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian separates the last three digits, then pairs: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rest := digits[:n-3]
	last3 := digits[n-3:]

	m := len(rest)
	head := m % 2
	if head > 0 {
		b.WriteString(rest[:head])
	}
	for i := head; i < m; i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(rest[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(last3)
	return b.String()
}
