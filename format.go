package gelbook

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// display formatting helpers. Values are kept exact everywhere else, rounding
// happens only here.

// FormatAmount renders a monetary value with two decimal places and a space
// as thousands separator, e.g. "12 345.67".
func FormatAmount(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatRate renders an effective per-unit exchange rate with four decimals.
func FormatRate(rate, quantity decimal.Decimal) string {
	if quantity.IsZero() {
		return "0.0000"
	}
	return rate.Div(quantity).StringFixed(4)
}

// Symbol returns the display symbol for a currency code ("₾" for GEL, "$" for
// USD), or the code itself when no symbol is known.
func Symbol(code string) string {
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}
