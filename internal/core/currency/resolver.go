package currency

import (
	"strings"

	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// Source records which signal decided the active currency.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceCookie   Source = "cookie"
	SourceGeo      Source = "header-geo"
	SourceDefault  Source = "default"
)

// Resolved is the per-request outcome of currency resolution. Persist tells
// the caller to write the preference cookie so the next request short-circuits
// at the cookie priority.
type Resolved struct {
	Currency domain.Currency
	Source   Source
	Persist  bool
}

// Signals are the raw request inputs the resolver works from. Empty strings
// mean the signal is absent. Unparseable request bodies surface here as an
// empty Explicit value, never as an error.
type Signals struct {
	Explicit       string // currency code from the request body, if any
	Cookie         string // persisted preference cookie value, if any
	CountryCode    string // CF-IPCountry / X-Country-Code header, if any
	AcceptLanguage string // Accept-Language header, if any
}

// Resolver decides the active currency for a visitor in strict priority
// order: explicit selection, persisted preference, geo/locale headers, then
// the static default. Invalid codes at any level are ignored, not errors.
type Resolver struct {
	catalog             *Catalog
	domesticCountryCode string
}

// NewResolver creates a resolver against the given catalog. domesticCountry
// is the ISO country whose visitors get the domestic currency (e.g. "IN").
func NewResolver(catalog *Catalog, domesticCountry string) *Resolver {
	return &Resolver{
		catalog:             catalog,
		domesticCountryCode: strings.ToUpper(strings.TrimSpace(domesticCountry)),
	}
}

// Resolve picks the active currency from the request signals.
func (r *Resolver) Resolve(sig Signals) Resolved {
	if curr, ok := r.catalog.Lookup(sig.Explicit); ok {
		return Resolved{Currency: curr, Source: SourceExplicit, Persist: true}
	}

	if curr, ok := r.catalog.Lookup(sig.Cookie); ok {
		return Resolved{Currency: curr, Source: SourceCookie}
	}

	if region, ok := r.regionFromHeaders(sig.CountryCode, sig.AcceptLanguage); ok {
		return Resolved{Currency: r.catalog.ForRegion(region), Source: SourceGeo, Persist: true}
	}

	return Resolved{Currency: r.catalog.Default(), Source: SourceDefault}
}

// regionFromHeaders maps the geo/locale signal to a region class. The country
// header wins over Accept-Language. Returns false when neither header carries
// a usable region.
func (r *Resolver) regionFromHeaders(countryCode, acceptLanguage string) (domain.Region, bool) {
	if country := strings.ToUpper(strings.TrimSpace(countryCode)); country != "" {
		if country == r.domesticCountryCode {
			return domain.RegionDomestic, true
		}
		return domain.RegionInternational, true
	}

	if region, ok := regionSubtag(acceptLanguage); ok {
		if region == r.domesticCountryCode {
			return domain.RegionDomestic, true
		}
		return domain.RegionInternational, true
	}

	return "", false
}

// regionSubtag extracts the region from the first Accept-Language entry,
// e.g. "hi-IN,hi;q=0.9" -> "IN". Quality weights are irrelevant here; only
// the preferred tag is inspected.
func regionSubtag(acceptLanguage string) (string, bool) {
	first := acceptLanguage
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	if i := strings.IndexByte(first, ';'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" || first == "*" {
		return "", false
	}

	parts := strings.Split(first, "-")
	for _, p := range parts[1:] {
		// The region subtag is the two-letter (or three-digit) part.
		if len(p) == 2 && isAlpha(p) {
			return strings.ToUpper(p), true
		}
	}
	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
