package gelbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SortColumn selects the comparator used to order a transaction listing.
type SortColumn int

const (
	SortByDate SortColumn = iota
	SortByUser
	SortByCurrency
	SortByAmount
	SortByGEL
	SortByYTD
)

func (c SortColumn) String() string {
	switch c {
	case SortByDate:
		return "date"
	case SortByUser:
		return "user"
	case SortByCurrency:
		return "currency"
	case SortByAmount:
		return "amount"
	case SortByGEL:
		return "gel"
	case SortByYTD:
		return "ytd"
	default:
		return "unknown"
	}
}

// ParseSortColumn parses a string into a SortColumn.
func ParseSortColumn(s string) (SortColumn, error) {
	switch s {
	case "date":
		return SortByDate, nil
	case "user":
		return SortByUser, nil
	case "currency":
		return SortByCurrency, nil
	case "amount":
		return SortByAmount, nil
	case "gel":
		return SortByGEL, nil
	case "ytd":
		return SortByYTD, nil
	default:
		return 0, fmt.Errorf("unknown sort column: %q", s)
	}
}

// All matches every user or currency in a Filter.
const All = "all"

// Filter is the session-scoped view state over the ledger: which subset to
// show and in which order. Its zero value shows everything, newest first.
type Filter struct {
	UserID       string // user id, or "all"/empty for every user
	CurrencyCode string // currency code, or "all"/empty for every currency
	From, To     Date   // inclusive bounds, zero value means unbounded
	Column       SortColumn
	Asc          bool // default order is descending
}

// NewFilter returns the default view state: all users, all currencies,
// unbounded dates, sorted by date descending.
func NewFilter() Filter { return Filter{} }

// Toggle sorts on a column: selecting the active column flips the direction,
// selecting a new one resets to descending.
func (f *Filter) Toggle(column SortColumn) {
	if f.Column == column {
		f.Asc = !f.Asc
	} else {
		f.Column = column
		f.Asc = false
	}
}

func matchesAll(s string) bool { return s == "" || s == All }

// Apply returns the subsequence of transactions matching the filter. The
// predicates are independent and conjunctive: their order does not affect the
// result.
func (f Filter) Apply(transactions []Transaction) []Transaction {
	var kept []Transaction
	for _, t := range transactions {
		if !matchesAll(f.UserID) && t.UserID != f.UserID {
			continue
		}
		if !matchesAll(f.CurrencyCode) && t.CurrencyCode != f.CurrencyCode {
			continue
		}
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && t.Date.After(f.To) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// Sort orders transactions in place by the filter's column and direction.
//
// The sort is stable: ties keep their filtered-input order. The user column
// compares resolved display names, the ytd column looks values up in a
// precomputed mapping (see PrecalculateAllYTD).
func (f Filter) Sort(transactions []Transaction, name func(userID string) string, ytd map[string]decimal.Decimal) {
	cmp := func(a, b Transaction) int {
		switch f.Column {
		case SortByUser:
			return strings.Compare(name(a.UserID), name(b.UserID))
		case SortByCurrency:
			return strings.Compare(a.CurrencyCode, b.CurrencyCode)
		case SortByAmount:
			return a.Amount.Cmp(b.Amount)
		case SortByGEL:
			return a.ConvertedGEL.Cmp(b.ConvertedGEL)
		case SortByYTD:
			return ytd[a.ID].Cmp(ytd[b.ID])
		default:
			return a.Date.Compare(b.Date)
		}
	}
	slices.SortStableFunc(transactions, func(a, b Transaction) int {
		if f.Asc {
			return cmp(a, b)
		}
		return -cmp(a, b)
	})
}
