package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/core/currency"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
	"github.com/bookloft/bookstore_backend/internal/platform/config"
)

// currencyHandler serves currency resolution and selection for visitors.
type currencyHandler struct {
	cfg      *config.Config
	catalog  *currency.Catalog
	resolver *currency.Resolver
}

func newCurrencyHandler(cfg *config.Config, catalog *currency.Catalog, resolver *currency.Resolver) *currencyHandler {
	return &currencyHandler{cfg: cfg, catalog: catalog, resolver: resolver}
}

// registerCurrencyRoutes registers the visitor-facing currency routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, cfg *config.Config, catalog *currency.Catalog, resolver *currency.Resolver) {
	h := newCurrencyHandler(cfg, catalog, resolver)

	rg.GET("/currency", h.getActiveCurrency)
	rg.POST("/currency", h.selectCurrency)
	rg.GET("/currencies", h.listCurrencies)
}

// resolveRequestCurrency runs the resolution priority chain for this request
// and writes the preference cookie when the outcome asks for it.
func resolveRequestCurrency(c *gin.Context, cfg *config.Config, resolver *currency.Resolver, explicit string) currency.Resolved {
	cookieVal, _ := c.Cookie(cfg.CurrencyCookieName)

	res := resolver.Resolve(currency.Signals{
		Explicit:       explicit,
		Cookie:         cookieVal,
		CountryCode:    countryHeader(c),
		AcceptLanguage: c.GetHeader("Accept-Language"),
	})

	if res.Persist {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(
			cfg.CurrencyCookieName,
			res.Currency.CurrencyCode,
			int(cfg.CurrencyCookieMaxAge.Seconds()),
			"/",
			"",
			cfg.IsProduction,
			false,
		)
	}
	return res
}

// countryHeader reads the edge-provided country code, preferring Cloudflare's
// header over the generic one.
func countryHeader(c *gin.Context) string {
	if v := c.GetHeader("CF-IPCountry"); v != "" {
		return v
	}
	return c.GetHeader("X-Country-Code")
}

// getActiveCurrency godoc
// @Summary Get the active currency
// @Description Resolves the display currency for the caller from their cookie, geo headers or the default.
// @Tags currency
// @Produce json
// @Success 200 {object} dto.ResolvedCurrencyResponse
// @Router /currency [get]
func (h *currencyHandler) getActiveCurrency(c *gin.Context) {
	res := resolveRequestCurrency(c, h.cfg, h.resolver, "")
	c.JSON(http.StatusOK, dto.ToResolvedCurrencyResponse(res))
}

// selectCurrency godoc
// @Summary Select a display currency
// @Description Stores the caller's currency preference. Unknown or malformed selections are ignored and resolution falls through to the next priority; the endpoint always answers 200.
// @Tags currency
// @Accept json
// @Produce json
// @Param selection body dto.SelectCurrencyRequest true "Currency selection"
// @Success 200 {object} dto.ResolvedCurrencyResponse
// @Router /currency [post]
func (h *currencyHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// A malformed body is not an error here: the selection is simply absent
	// and resolution continues down the priority chain.
	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Ignoring unusable currency selection", slog.String("error", err.Error()))
		req.CurrencyCode = ""
	}

	res := resolveRequestCurrency(c, h.cfg, h.resolver, req.CurrencyCode)
	c.JSON(http.StatusOK, dto.ToResolvedCurrencyResponse(res))
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the static currency catalog.
// @Tags currency
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	catalog := h.catalog.List()
	resp := make([]dto.CurrencyResponse, len(catalog))
	for i, curr := range catalog {
		resp[i] = dto.ToCurrencyResponse(curr)
	}
	c.JSON(http.StatusOK, resp)
}
