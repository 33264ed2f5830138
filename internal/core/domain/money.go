package domain

// Money is a dual-denominated price. Both amounts are integer minor units
// (paise / cents), pre-priced in their respective reference currencies; no
// rate conversion ever happens between the two.
type Money struct {
	AmountLocal         int64 `json:"amountLocal"`         // minor units in the domestic currency
	AmountInternational int64 `json:"amountInternational"` // minor units in the international currency
}

// AmountFor returns the minor-unit amount priced for the given region class.
func (m Money) AmountFor(region Region) int64 {
	if region == RegionDomestic {
		return m.AmountLocal
	}
	return m.AmountInternational
}

// Valid reports whether both amounts are non-negative.
func (m Money) Valid() bool {
	return m.AmountLocal >= 0 && m.AmountInternational >= 0
}
