package gelbook

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Bounds applied by the validation predicates.
const (
	MinYear = 2000
	MaxYear = 2100
)

// MaxAmount is the largest accepted source-currency amount.
var MaxAmount = decimal.NewFromInt(1_000_000_000)

var currencyCodeRE = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidDate reports whether d is a real calendar date within the supported
// year range.
func ValidDate(d Date) bool {
	return !d.IsZero() && d.Year() >= MinYear && d.Year() <= MaxYear
}

// ValidDateString reports whether s parses to a valid date.
func ValidDateString(s string) bool {
	d, err := ParseDate(s)
	return err == nil && ValidDate(d)
}

// ValidAmount reports whether a is a positive amount no larger than MaxAmount.
func ValidAmount(a decimal.Decimal) bool {
	return a.IsPositive() && a.LessThanOrEqual(MaxAmount)
}

// ValidCurrencyCode reports whether c is exactly three uppercase ASCII letters.
func ValidCurrencyCode(c string) bool {
	return currencyCodeRE.MatchString(c)
}

// Valid reports whether the user is well-formed. Malformed users are dropped
// on load rather than propagated.
func (u User) Valid() bool {
	return u.ID != "" && u.Name != ""
}

// Valid reports whether the transaction is well-formed. Malformed transactions
// are dropped on load and excluded from every aggregation.
func (t Transaction) Valid() bool {
	if t.ID == "" || t.UserID == "" {
		return false
	}
	if !ValidDate(t.Date) {
		return false
	}
	if !ValidCurrencyCode(t.CurrencyCode) {
		return false
	}
	return ValidAmount(t.Amount) && ValidAmount(t.ConvertedGEL)
}
