package gelbook

import "testing"

func TestValidCurrencyCode(t *testing.T) {
	valid := []string{"USD", "EUR", "GEL", "JPY"}
	for _, code := range valid {
		if !ValidCurrencyCode(code) {
			t.Errorf("ValidCurrencyCode(%q) = false, want true", code)
		}
	}
	invalid := []string{"usd", "US", "USDT", "", "U1D", "US-"}
	for _, code := range invalid {
		if ValidCurrencyCode(code) {
			t.Errorf("ValidCurrencyCode(%q) = true, want false", code)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate(MustParse("2025-01-15")) {
		t.Error("2025-01-15 should be valid")
	}
	if ValidDate(Date{}) {
		t.Error("zero date should be invalid")
	}
	if ValidDate(MustParse("1999-12-31")) {
		t.Error("1999-12-31 is before the minimum year")
	}
	if ValidDate(MustParse("2101-01-01")) {
		t.Error("2101-01-01 is after the maximum year")
	}
	if !ValidDate(MustParse("2000-01-01")) || !ValidDate(MustParse("2100-12-31")) {
		t.Error("year bounds are inclusive")
	}
}

func TestValidAmount(t *testing.T) {
	if !ValidAmount(dec(0.01)) || !ValidAmount(dec(100)) {
		t.Error("positive amounts in range should be valid")
	}
	if !ValidAmount(MaxAmount) {
		t.Error("the maximum amount itself is valid")
	}
	if ValidAmount(dec(0)) {
		t.Error("zero is not a valid amount")
	}
	if ValidAmount(dec(-5)) {
		t.Error("negative amounts are invalid")
	}
	if ValidAmount(MaxAmount.Add(dec(1))) {
		t.Error("amounts above the maximum are invalid")
	}
}

func TestUser_Valid(t *testing.T) {
	if !(User{ID: "u1", Name: "John"}).Valid() {
		t.Error("complete user should be valid")
	}
	if (User{ID: "u1"}).Valid() {
		t.Error("user without a name is invalid")
	}
	if (User{Name: "John"}).Valid() {
		t.Error("user without an id is invalid")
	}
	// TaxpayerID may be empty.
	if !(User{ID: "u1", Name: "John", TaxpayerID: ""}).Valid() {
		t.Error("empty taxpayer id is allowed")
	}
}

func TestTransaction_Valid(t *testing.T) {
	good := testTx("u1", "2025-01-15", 100)
	if !good.Valid() {
		t.Fatal("fixture transaction should be valid")
	}

	for name, mutate := range map[string]func(*Transaction){
		"missing id":       func(x *Transaction) { x.ID = "" },
		"missing user":     func(x *Transaction) { x.UserID = "" },
		"zero date":        func(x *Transaction) { x.Date = Date{} },
		"old date":         func(x *Transaction) { x.Date = MustParse("1999-01-01") },
		"bad currency":     func(x *Transaction) { x.CurrencyCode = "usd" },
		"zero amount":      func(x *Transaction) { x.Amount = dec(0) },
		"negative gel":     func(x *Transaction) { x.ConvertedGEL = dec(-1) },
		"excessive amount": func(x *Transaction) { x.Amount = MaxAmount.Add(dec(1)) },
	} {
		bad := good
		mutate(&bad)
		if bad.Valid() {
			t.Errorf("%s: transaction should be invalid", name)
		}
	}
}
