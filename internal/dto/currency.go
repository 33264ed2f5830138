package dto

import (
	"github.com/bookloft/bookstore_backend/internal/core/currency"
	"github.com/bookloft/bookstore_backend/internal/core/domain"
)

// SelectCurrencyRequest is the body of the currency selection endpoint.
// Binding failures on this request are deliberately not surfaced: an
// unparseable or unknown selection falls through to the next resolution
// priority and the endpoint still answers 200.
type SelectCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}

// ResolvedCurrencyResponse reports the active currency for the caller.
type ResolvedCurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Source       string `json:"source"`
}

// ToResolvedCurrencyResponse converts a resolution outcome to its DTO.
func ToResolvedCurrencyResponse(res currency.Resolved) ResolvedCurrencyResponse {
	return ResolvedCurrencyResponse{
		CurrencyCode: res.Currency.CurrencyCode,
		Symbol:       res.Currency.Symbol,
		Source:       string(res.Source),
	}
}

// CurrencyResponse describes one catalog entry.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Region       string `json:"region"`
	IsDefault    bool   `json:"isDefault"`
}

// ToCurrencyResponse converts a domain Currency to its DTO.
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		Region:       string(curr.Region),
		IsDefault:    curr.IsDefault,
	}
}

// PriceResponse is a display-ready price. Formatted falls back to a
// placeholder when the stored amounts are unusable.
type PriceResponse struct {
	Value        float64 `json:"value"`
	Formatted    string  `json:"formatted"`
	CurrencyCode string  `json:"currencyCode"`
}
