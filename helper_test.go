package gelbook

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook/nbg"
)

// dec is a helper for tests to create a decimal from a float constant.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// cur is a helper for tests to create a currency snapshot.
func cur(code string, rate, quantity float64) nbg.Currency {
	return nbg.Currency{Code: code, Name: code, Rate: dec(rate), Quantity: dec(quantity)}
}

var txSeq int

// testTx builds a valid transaction with a deterministic id and timestamp.
// gel is stored as-is in ConvertedGEL, the conversion engine is not involved.
func testTx(userID, day string, gel float64) Transaction {
	txSeq++
	return Transaction{
		ID:           fmt.Sprintf("tx-%03d", txSeq),
		UserID:       userID,
		Date:         MustParse(day),
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		Amount:       dec(gel),
		Rate:         dec(1),
		Quantity:     dec(1),
		ConvertedGEL: dec(gel),
		Timestamp:    fmt.Sprintf("2025-06-01T00:%02d:%02d.000Z", txSeq/60, txSeq%60),
	}
}

// openTestLedger creates a ledger over a fresh in-memory storage with the
// given extra users.
func openTestLedger(t interface{ Fatalf(string, ...any) }, users ...User) (*Ledger, *MemoryStorage) {
	storage := NewMemoryStorage()
	ledger, err := Open(storage)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	for _, u := range users {
		if err := ledger.AddUser(u); err != nil {
			t.Fatalf("AddUser(%q) failed: %v", u.ID, err)
		}
	}
	return ledger, storage
}

// yes and no are canned confirmers.
func yes(string) bool { return true }
func no(string) bool  { return false }
