package money

import (
	"github.com/shopspring/decimal"
)

// Symbol prefixes rendered amounts.
const Symbol = "N"

// Format renders v with exactly two decimals, rounding half away from zero.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WithSymbol renders v as a currency amount, e.g. "N1500.00" or "-N12.50".
func WithSymbol(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return "-" + Symbol + d.Neg().StringFixed(2)
	}
	return Symbol + d.StringFixed(2)
}

// Percent renders v as a two-decimal percentage, e.g. "37.48%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}
