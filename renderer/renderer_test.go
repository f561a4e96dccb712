package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook"
)

func fixture() ([]gelbook.Transaction, func(string) string, map[string]decimal.Decimal) {
	transactions := []gelbook.Transaction{
		{
			ID: "t1", UserID: "user_a", Date: gelbook.MustParse("2025-01-15"),
			CurrencyCode: "USD", CurrencyName: "US Dollar",
			Amount: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(2.875), Quantity: decimal.NewFromInt(1),
			ConvertedGEL: decimal.NewFromFloat(287.5),
			Timestamp:    "2025-01-15T10:00:00.000Z",
		},
		{
			ID: "t2", UserID: "user_a", Date: gelbook.MustParse("2025-02-10"),
			CurrencyCode: "EUR", CurrencyName: "Euro",
			Amount: decimal.NewFromInt(200), Rate: decimal.NewFromFloat(3.1), Quantity: decimal.NewFromInt(1),
			ConvertedGEL: decimal.NewFromInt(620), Comment: "consulting",
			Timestamp:    "2025-02-10T10:00:00.000Z",
		},
		{
			ID: "t3", UserID: "user_b", Date: gelbook.MustParse("2024-12-01"),
			CurrencyCode: "GEL", CurrencyName: "Georgian Lari",
			Amount: decimal.NewFromInt(50), Rate: decimal.NewFromInt(1), Quantity: decimal.NewFromInt(1),
			ConvertedGEL: decimal.NewFromInt(50),
			Timestamp:    "2024-12-01T10:00:00.000Z",
		},
	}
	names := map[string]string{"user_a": "Alice", "user_b": "Bob"}
	name := func(id string) string { return names[id] }
	ytd := map[string]decimal.Decimal{
		"t1": decimal.NewFromFloat(287.5),
		"t2": decimal.NewFromFloat(907.5),
		"t3": decimal.NewFromInt(50),
	}
	return transactions, name, ytd
}

func TestNewStatement(t *testing.T) {
	transactions, name, ytd := fixture()
	s := NewStatement(gelbook.MustParse("2025-03-01"), transactions, name, ytd)

	if s.AsOf != "2025-03-01" {
		t.Errorf("AsOf = %q", s.AsOf)
	}
	if s.TotalGEL != "957.50" {
		t.Errorf("TotalGEL = %q, want 957.50", s.TotalGEL)
	}
	if len(s.Transactions) != 3 {
		t.Fatalf("got %d rows, want 3", len(s.Transactions))
	}
	if got := s.Transactions[0].YTD; got != "287.50" {
		t.Errorf("row YTD = %q, want 287.50", got)
	}

	// Summaries are grouped per (user, year) and ordered by name then year.
	if len(s.Summaries) != 2 {
		t.Fatalf("got %d summaries, want 2: %+v", len(s.Summaries), s.Summaries)
	}
	alice := s.Summaries[0]
	if alice.User != "Alice" || alice.Year != 2025 || alice.Transactions != 2 || alice.TotalGEL != "907.50" {
		t.Errorf("Alice 2025 summary = %+v", alice)
	}
	bob := s.Summaries[1]
	if bob.User != "Bob" || bob.Year != 2024 || bob.TotalGEL != "50.00" {
		t.Errorf("Bob 2024 summary = %+v", bob)
	}
}

func TestRenderStatement(t *testing.T) {
	transactions, name, ytd := fixture()
	s := NewStatement(gelbook.MustParse("2025-03-01"), transactions, name, ytd)
	got := RenderStatement(s)

	for _, want := range []string{
		"# Ledger Statement as of 2025-03-01",
		"**957.50 GEL**",
		"## Yearly Income",
		"| Alice | 2025 | 2 | 907.50 |",
		"## Transactions",
		"| 2025-02-10 | Alice | EUR | € 200.00 | 620.00 | 907.50 | consulting |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("statement misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("statement reports a template error:\n%s", got)
	}
}

func TestRenderStatement_empty(t *testing.T) {
	s := NewStatement(gelbook.MustParse("2025-03-01"), nil, func(string) string { return "" }, nil)
	got := RenderStatement(s)
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("empty statement:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	transactions, name, ytd := fixture()
	var rows []TransactionRow
	for _, tx := range transactions {
		rows = append(rows, NewTransactionRow(tx, name, ytd))
	}
	got := TransactionsMarkdown("Transactions", rows)

	for _, want := range []string{"# Transactions", "| Date |", "Alice", "3 transactions."} {
		if !strings.Contains(got, want) {
			t.Errorf("listing misses %q:\n%s", want, got)
		}
	}

	if got := TransactionsMarkdown("Transactions", nil); !strings.Contains(got, "No transactions match.") {
		t.Errorf("empty listing:\n%s", got)
	}
}

func TestYTDMarkdown(t *testing.T) {
	got := YTDMarkdown([]YearSummary{{User: "Alice", Year: 2025, Transactions: 2, TotalGEL: "907.50"}})
	for _, want := range []string{"# Yearly Income", "Alice", "907.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestUsersMarkdown(t *testing.T) {
	users := []gelbook.User{
		{ID: "user", Name: "user"},
		{ID: "user_a", Name: "Alice", TaxpayerID: "12345"},
	}
	got := UsersMarkdown(users, map[string]int{"user_a": 2})
	for _, want := range []string{"# Users", "Alice", "12345"} {
		if !strings.Contains(got, want) {
			t.Errorf("users table misses %q:\n%s", want, got)
		}
	}
}
