package gelbook

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook/nbg"
)

// LocalCurrency is the currency every conversion targets.
const LocalCurrency = "GEL"

func init() {
	// Amounts are persisted as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ConvertToGEL converts an amount of cur into GEL.
//
// Published rates are quoted per a stated quantity of foreign-currency units
// (e.g. rate per 100 JPY), so the result is amount * rate / quantity. The
// local currency converts at the identity rate. No rounding happens here,
// rounding is a display concern.
func ConvertToGEL(amount decimal.Decimal, cur nbg.Currency) decimal.Decimal {
	if cur.Code == LocalCurrency {
		return amount
	}
	return amount.Mul(cur.Rate).Div(cur.Quantity)
}
