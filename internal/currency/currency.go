// Package currency maps stored 3-letter currency codes to display symbols.
// Resolution never fails: unknown codes fall back to the raw code, and a
// missing code falls back to the system default.
package currency

import "sort"

const (
	DefaultCode   = "GBP"
	DefaultSymbol = "£"
)

// codes is the fixed set offered at signup and on the profile form.
var codes = map[string]string{
	"GBP": "British Pound (£)",
	"USD": "US Dollar ($)",
	"EUR": "Euro (€)",
	"NGN": "Nigerian Naira (₦)",
	"GHS": "Ghanaian Cedi (₵)",
	"KES": "Kenyan Shilling (KSh)",
	"ZAR": "South African Rand (R)",
	"INR": "Indian Rupee (₹)",
	"CAD": "Canadian Dollar ($)",
	"AUD": "Australian Dollar ($)",
	"JPY": "Japanese Yen (¥)",
}

var symbols = map[string]string{
	"GBP": "£",
	"USD": "$",
	"EUR": "€",
	"NGN": "₦",
	"GHS": "₵",
	"KES": "KSh",
	"ZAR": "R",
	"INR": "₹",
	"CAD": "$",
	"AUD": "$",
	"JPY": "¥",
	"CNY": "¥",
}

// Known reports whether code belongs to the supported currency set.
func Known(code string) bool {
	_, ok := codes[code]
	return ok
}

// Symbol returns the display symbol for code. Unrecognized codes are
// returned verbatim so the user still sees something meaningful; an empty
// code resolves to the default symbol.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	if code == "" {
		return DefaultSymbol
	}
	return code
}

// Choice is one selectable currency for signup/profile forms.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Choices returns the supported currencies sorted by code.
func Choices() []Choice {
	out := make([]Choice, 0, len(codes))
	for code, label := range codes {
		out = append(out, Choice{Code: code, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
