package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	return NewResolver(NewDefaultCatalog(), "IN")
}

func TestResolve_PriorityOrder(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name        string
		sig         Signals
		wantCode    string
		wantSource  Source
		wantPersist bool
	}{
		{
			name:        "explicit wins over everything",
			sig:         Signals{Explicit: "USD", Cookie: "INR", CountryCode: "IN"},
			wantCode:    "USD",
			wantSource:  SourceExplicit,
			wantPersist: true,
		},
		{
			name:        "lowercase explicit is normalized",
			sig:         Signals{Explicit: "inr"},
			wantCode:    "INR",
			wantSource:  SourceExplicit,
			wantPersist: true,
		},
		{
			name:       "unknown explicit falls through to cookie",
			sig:        Signals{Explicit: "ABC", Cookie: "usd"},
			wantCode:   "USD",
			wantSource: SourceCookie,
		},
		{
			name:       "cookie wins over headers",
			sig:        Signals{Cookie: "INR", CountryCode: "US"},
			wantCode:   "INR",
			wantSource: SourceCookie,
		},
		{
			name:        "domestic country header",
			sig:         Signals{CountryCode: "IN"},
			wantCode:    "INR",
			wantSource:  SourceGeo,
			wantPersist: true,
		},
		{
			name:        "foreign country header",
			sig:         Signals{CountryCode: "DE"},
			wantCode:    "USD",
			wantSource:  SourceGeo,
			wantPersist: true,
		},
		{
			name:        "domestic locale header",
			sig:         Signals{AcceptLanguage: "hi-IN,hi;q=0.9,en;q=0.8"},
			wantCode:    "INR",
			wantSource:  SourceGeo,
			wantPersist: true,
		},
		{
			name:        "foreign locale header",
			sig:         Signals{AcceptLanguage: "en-US,en;q=0.9"},
			wantCode:    "USD",
			wantSource:  SourceGeo,
			wantPersist: true,
		},
		{
			name:       "locale without region falls to default",
			sig:        Signals{AcceptLanguage: "en"},
			wantCode:   "INR",
			wantSource: SourceDefault,
		},
		{
			name:       "no signals at all",
			sig:        Signals{},
			wantCode:   "INR",
			wantSource: SourceDefault,
		},
		{
			name:       "garbage everywhere still resolves",
			sig:        Signals{Explicit: "??", Cookie: "nope", AcceptLanguage: "*"},
			wantCode:   "INR",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.sig)
			assert.Equal(t, tt.wantCode, got.Currency.CurrencyCode)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.Equal(t, tt.wantPersist, got.Persist)
		})
	}
}

func TestResolve_CookieIsNotRepersisted(t *testing.T) {
	r := newTestResolver()

	got := r.Resolve(Signals{Cookie: "USD"})
	assert.Equal(t, SourceCookie, got.Source)
	assert.False(t, got.Persist, "an already persisted preference must not be rewritten")
}
