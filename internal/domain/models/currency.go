package models

import (
	"sort"
	"strings"
)

// Currency is an ISO-4217-like currency code (BTC included).
type Currency string

// CurrencyInfo describes a currency offered by the converter.
type CurrencyInfo struct {
	Code   Currency `json:"code" example:"BRL"`
	Name   string   `json:"name" example:"Real Brasileiro"`
	Symbol string   `json:"symbol" example:"R$"`
}

var currencies = map[Currency]CurrencyInfo{
	"BRL": {Code: "BRL", Name: "Real Brasileiro", Symbol: "R$"},
	"USD": {Code: "USD", Name: "Dólar Americano", Symbol: "$"},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€"},
	"GBP": {Code: "GBP", Name: "Libra Esterlina", Symbol: "£"},
	"JPY": {Code: "JPY", Name: "Iene Japonês", Symbol: "¥"},
	"BTC": {Code: "BTC", Name: "Bitcoin", Symbol: "₿"},
	"AUD": {Code: "AUD", Name: "Dólar Australiano", Symbol: "A$"},
	"CHF": {Code: "CHF", Name: "Franco Suíço", Symbol: "CHF"},
	"CAD": {Code: "CAD", Name: "Dólar Canadense", Symbol: "C$"},
	"CNY": {Code: "CNY", Name: "Yuan Chinês", Symbol: "¥"},
	"ARS": {Code: "ARS", Name: "Peso Argentino", Symbol: "$"},
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(s string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(s)))
}

// IsSupported reports whether c is part of the converter catalogue.
func (c Currency) IsSupported() bool {
	_, ok := currencies[c]
	return ok
}

// Info returns catalogue details for c.
func (c Currency) Info() (CurrencyInfo, bool) {
	info, ok := currencies[c]
	return info, ok
}

func (c Currency) String() string { return string(c) }

// SupportedCurrencies returns the catalogue sorted by code.
func SupportedCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(currencies))
	for _, info := range currencies {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
