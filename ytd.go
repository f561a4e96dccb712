package gelbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Year-to-date aggregation: the cumulative GEL income of one user within one
// calendar year, up to and including a given transaction.
//
// Transactions sharing a date are ordered by creation timestamp, never by
// ledger slice order: the ledger is not guaranteed sorted on disk.

// compareYTD orders transactions ascending by (date, timestamp).
func compareYTD(a, b Transaction) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Timestamp, b.Timestamp)
}

// CalculateYTD returns the running GEL total for tx's owner and calendar
// year, up to and including tx. Invalid transactions contribute zero.
func CalculateYTD(tx Transaction, all []Transaction) decimal.Decimal {
	if !tx.Valid() {
		return decimal.Zero
	}

	year := tx.Date.Year()
	var scope []Transaction
	for _, t := range all {
		if !t.Valid() {
			continue
		}
		if t.UserID == tx.UserID && t.Date.Year() == year && !t.Date.After(tx.Date) {
			scope = append(scope, t)
		}
	}
	slices.SortStableFunc(scope, compareYTD)

	total := decimal.Zero
	for _, t := range scope {
		total = total.Add(t.ConvertedGEL)
		if t.ID == tx.ID || (t.Date == tx.Date && t.Timestamp == tx.Timestamp) {
			return total
		}
	}
	return total
}

// PrecalculateAllYTD computes the YTD value of every valid transaction in a
// single O(n log n) pass. It returns a mapping from transaction ID to its
// running total, and agrees with CalculateYTD on every transaction.
func PrecalculateAllYTD(all []Transaction) map[string]decimal.Decimal {
	valid := make([]Transaction, 0, len(all))
	for _, t := range all {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	slices.SortStableFunc(valid, func(a, b Transaction) int {
		if c := strings.Compare(a.UserID, b.UserID); c != 0 {
			return c
		}
		return compareYTD(a, b)
	})

	ytd := make(map[string]decimal.Decimal, len(valid))
	running := make(map[string]decimal.Decimal)
	for _, t := range valid {
		key := fmt.Sprintf("%s_%d", t.UserID, t.Date.Year())
		total := running[key].Add(t.ConvertedGEL)
		running[key] = total
		ytd[t.ID] = total
	}
	return ytd
}
