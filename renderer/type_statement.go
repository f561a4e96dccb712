package renderer

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook"
)

// Statement is a struct to represent a full ledger statement for rendering.
// Amounts are pre-formatted strings so templates stay free of number logic.
type Statement struct {
	// AsOf is the date the statement was generated for.
	AsOf string `json:"asOf"`
	// TotalGEL is the grand total of all listed transactions, in lari.
	TotalGEL string `json:"totalGEL"`
	// Summaries is one line per (user, year), ordered by user name then year.
	Summaries []YearSummary `json:"summaries"`
	// Transactions is the listing, in the caller's order.
	Transactions []TransactionRow `json:"transactions"`
}

// YearSummary is the yearly income total of one user.
type YearSummary struct {
	User         string `json:"user"`
	Year         int    `json:"year"`
	Transactions int    `json:"transactions"`
	TotalGEL     string `json:"totalGEL"`
}

// TransactionRow holds the data for a single transaction line in a report.
type TransactionRow struct {
	Date     string `json:"date"`
	User     string `json:"user"`
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	GEL      string `json:"gel"`
	YTD      string `json:"ytd"`
	Comment  string `json:"comment,omitempty"`
}

// NewStatement builds the statement view for transactions, resolving user ids
// through name and YTD values through the precomputed mapping (see
// gelbook.PrecalculateAllYTD over the full ledger).
func NewStatement(asOf gelbook.Date, transactions []gelbook.Transaction, name func(userID string) string, ytd map[string]decimal.Decimal) *Statement {
	s := &Statement{AsOf: asOf.String()}

	type bucket struct {
		user  string
		year  int
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	var order []string
	total := decimal.Zero

	for _, t := range transactions {
		s.Transactions = append(s.Transactions, NewTransactionRow(t, name, ytd))
		total = total.Add(t.ConvertedGEL)

		key := fmt.Sprintf("%s_%d", t.UserID, t.Date.Year())
		b, ok := buckets[key]
		if !ok {
			b = &bucket{user: name(t.UserID), year: t.Date.Year()}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
		b.total = b.total.Add(t.ConvertedGEL)
	}
	s.TotalGEL = gelbook.FormatAmount(total)

	for _, key := range order {
		b := buckets[key]
		s.Summaries = append(s.Summaries, YearSummary{
			User:         b.user,
			Year:         b.year,
			Transactions: b.count,
			TotalGEL:     gelbook.FormatAmount(b.total),
		})
	}
	sort.SliceStable(s.Summaries, func(i, j int) bool {
		if s.Summaries[i].User != s.Summaries[j].User {
			return s.Summaries[i].User < s.Summaries[j].User
		}
		return s.Summaries[i].Year < s.Summaries[j].Year
	})
	return s
}

// NewTransactionRow formats one transaction for display.
func NewTransactionRow(t gelbook.Transaction, name func(userID string) string, ytd map[string]decimal.Decimal) TransactionRow {
	return TransactionRow{
		Date:     t.Date.String(),
		User:     name(t.UserID),
		Currency: t.CurrencyCode,
		Amount:   gelbook.Symbol(t.CurrencyCode) + " " + gelbook.FormatAmount(t.Amount),
		GEL:      gelbook.FormatAmount(t.ConvertedGEL),
		YTD:      gelbook.FormatAmount(ytd[t.ID]),
		Comment:  t.Comment,
	}
}
