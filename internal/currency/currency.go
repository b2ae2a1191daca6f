// Package currency holds the static display registry: currency code to
// symbol, name, and decimal precision. Currencies are independent
// labels; nothing here converts between them.
package currency

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Default is the currency assumed when a user never picked one.
const Default = "USD"

// Info describes how to render amounts in one currency.
type Info struct {
	Symbol   string
	Name     string
	Decimals int32
}

var registry = map[string]Info{
	"USD": {Symbol: "$", Name: "US Dollar", Decimals: 2},
	"EUR": {Symbol: "€", Name: "Euro", Decimals: 2},
	"GBP": {Symbol: "£", Name: "British Pound", Decimals: 2},
	"JPY": {Symbol: "¥", Name: "Japanese Yen", Decimals: 0},
	"CAD": {Symbol: "C$", Name: "Canadian Dollar", Decimals: 2},
	"AUD": {Symbol: "A$", Name: "Australian Dollar", Decimals: 2},
	"CHF": {Symbol: "Fr", Name: "Swiss Franc", Decimals: 2},
	"CNY": {Symbol: "¥", Name: "Chinese Yuan", Decimals: 2},
	"INR": {Symbol: "₹", Name: "Indian Rupee", Decimals: 2},
	"KRW": {Symbol: "₩", Name: "South Korean Won", Decimals: 0},
	"BRL": {Symbol: "R$", Name: "Brazilian Real", Decimals: 2},
	"MXN": {Symbol: "$", Name: "Mexican Peso", Decimals: 2},
}

// Lookup returns the registry entry for code.
func Lookup(code string) (Info, bool) {
	info, ok := registry[code]
	return info, ok
}

// Known reports whether code is registered.
func Known(code string) bool {
	_, ok := registry[code]
	return ok
}

// Codes returns all registered codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format renders an amount with the code's symbol and decimal places.
// Unknown codes fall back to "CODE amount" with two decimals.
func Format(code string, amount decimal.Decimal) string {
	info, ok := registry[code]
	if !ok {
		return code + " " + amount.StringFixed(2)
	}
	return info.Symbol + amount.StringFixed(info.Decimals)
}
