package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookloft/bookstore_backend/internal/core/currency"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

func currencyTestConfig() *config.Config {
	return &config.Config{
		CurrencyCookieName:   "curr",
		CurrencyCookieMaxAge: 8760 * time.Hour,
		DomesticCountryCode:  "IN",
	}
}

func newCurrencyRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()

	cfg := currencyTestConfig()
	catalog := currency.NewDefaultCatalog()
	resolver := currency.NewResolver(catalog, cfg.DomesticCountryCode)

	r := gin.New()
	registerCurrencyRoutes(r.Group("/"), cfg, catalog, resolver)
	return r
}

func decodeResolved(t *testing.T, w *httptest.ResponseRecorder) dto.ResolvedCurrencyResponse {
	t.Helper()
	var resp dto.ResolvedCurrencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func currencyCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "curr" {
			return c
		}
	}
	return nil
}

func TestSelectCurrency_LowercaseCodeIsNormalized(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/currency", strings.NewReader(`{"currencyCode":"usd"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResolved(t, w)
	assert.Equal(t, "USD", resp.CurrencyCode)
	assert.Equal(t, "explicit", resp.Source)

	cookie := currencyCookie(w)
	require.NotNil(t, cookie, "explicit selection should persist the preference cookie")
	assert.Equal(t, "USD", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.HttpOnly, "frontend reads the currency cookie")
	assert.Equal(t, int((8760 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestSelectCurrency_MalformedBodyFallsThrough(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/currency", strings.NewReader(`{"currencyCode": 42`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "unusable selections are ignored, never an error")
	resp := decodeResolved(t, w)
	assert.Equal(t, "INR", resp.CurrencyCode)
	assert.Equal(t, "default", resp.Source)
	assert.Nil(t, currencyCookie(w), "nothing to persist when resolution falls to the default")
}

func TestSelectCurrency_UnknownCodeFallsThroughToGeo(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/currency", strings.NewReader(`{"currencyCode":"XYZ"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("CF-IPCountry", "DE")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResolved(t, w)
	assert.Equal(t, "USD", resp.CurrencyCode)
	assert.Equal(t, "header-geo", resp.Source)
}

func TestGetActiveCurrency_GeoHeaderPersists(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	req.Header.Set("CF-IPCountry", "IN")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResolved(t, w)
	assert.Equal(t, "INR", resp.CurrencyCode)
	assert.Equal(t, "header-geo", resp.Source)

	cookie := currencyCookie(w)
	require.NotNil(t, cookie, "geo resolution should persist so later requests skip the headers")
	assert.Equal(t, "INR", cookie.Value)
}

func TestGetActiveCurrency_CookieWinsAndIsNotRewritten(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	req.AddCookie(&http.Cookie{Name: "curr", Value: "USD"})
	req.Header.Set("CF-IPCountry", "IN")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResolved(t, w)
	assert.Equal(t, "USD", resp.CurrencyCode)
	assert.Equal(t, "cookie", resp.Source)
	assert.Nil(t, currencyCookie(w), "an already persisted preference is not rewritten")
}

func TestGetActiveCurrency_AcceptLanguageFallback(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResolved(t, w)
	assert.Equal(t, "USD", resp.CurrencyCode)
	assert.Equal(t, "header-geo", resp.Source)
}

func TestListCurrencies(t *testing.T) {
	r := newCurrencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "INR", resp[0].CurrencyCode)
	assert.True(t, resp[0].IsDefault)
	assert.Equal(t, "USD", resp[1].CurrencyCode)
	assert.False(t, resp[1].IsDefault)
}
