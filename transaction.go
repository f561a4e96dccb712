package gelbook

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook/nbg"
)

// TimestampFormat is the format of a transaction creation instant.
const TimestampFormat = time.RFC3339Nano

// Transaction records one conversion into GEL.
//
// Rate, Quantity and CurrencyName are a snapshot of the rate source at
// conversion time, they are never re-fetched later. ConvertedGEL is computed
// once at creation and stored. Timestamp is the creation instant, unique
// across the ledger: two transactions with the same timestamp are the same
// logical event.
type Transaction struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Date         Date            `json:"date"` // valuation date, distinct from Timestamp
	CurrencyCode string          `json:"currencyCode"`
	CurrencyName string          `json:"currencyName"`
	Amount       decimal.Decimal `json:"amount"`
	Rate         decimal.Decimal `json:"rate"`
	Quantity     decimal.Decimal `json:"quantity"`
	ConvertedGEL decimal.Decimal `json:"convertedGEL"`
	Comment      string          `json:"comment"`
	Timestamp    string          `json:"timestamp"`
}

// NewTransaction creates a transaction for the given user converting amount of
// cur on day. The GEL value is computed from the currency snapshot.
func NewTransaction(userID string, day Date, cur nbg.Currency, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         day,
		CurrencyCode: cur.Code,
		CurrencyName: cur.Name,
		Amount:       amount,
		Rate:         cur.Rate,
		Quantity:     cur.Quantity,
		ConvertedGEL: ConvertToGEL(amount, cur),
		Timestamp:    time.Now().UTC().Format(TimestampFormat),
	}
}

// MarshalJSON keeps the persisted field order stable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("userId", t.UserID)
	w.Append("date", t.Date)
	w.Append("currencyCode", t.CurrencyCode)
	w.Append("currencyName", t.CurrencyName)
	w.Append("amount", t.Amount)
	w.Append("rate", t.Rate)
	w.Append("quantity", t.Quantity)
	w.Append("convertedGEL", t.ConvertedGEL)
	w.Append("comment", t.Comment)
	w.Append("timestamp", t.Timestamp)
	return w.MarshalJSON()
}
