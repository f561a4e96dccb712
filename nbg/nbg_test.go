package nbg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

// payload is a trimmed real response for 2025-01-15.
const payload = `[
  {
    "date": "2025-01-15T00:00:00.000Z",
    "currencies": [
      {"code": "USD", "name": "US Dollar", "rate": 2.875, "quantity": 1, "rateFormated": "2.8750"},
      {"code": "EUR", "name": "Euro", "rate": 3.1, "quantity": 1, "rateFormated": "3.1000"},
      {"code": "JPY", "name": "Japanese Yen", "rate": 1.8123, "quantity": 100, "rateFormated": "0.0181"}
    ]
  }
]`

func TestParse(t *testing.T) {
	currencies, err := Parse([]byte(payload), "2025-01-15")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(currencies) != 3 {
		t.Fatalf("got %d currencies, want 3", len(currencies))
	}

	usd, ok := Find(currencies, "USD")
	if !ok {
		t.Fatal("USD not found")
	}
	if usd.Name != "US Dollar" || !usd.Rate.Equal(decimal.NewFromFloat(2.875)) || !usd.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Errorf("USD = %+v", usd)
	}

	jpy, _ := Find(currencies, "JPY")
	if !jpy.Quantity.Equal(decimal.NewFromInt(100)) {
		t.Errorf("JPY quantity = %s, want 100", jpy.Quantity)
	}

	if _, ok := Find(currencies, "XXX"); ok {
		t.Error("Find must report absent codes")
	}
}

func TestParse_rejectsWrongShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>maintenance</html>`},
		{"empty array", `[]`},
		{"object not array", `{"currencies": []}`},
		{"no currencies key", `[{"date": "2025-01-15"}]`},
		{"empty currencies", `[{"date": "2025-01-15", "currencies": []}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.body), "2025-01-15"); err == nil {
				t.Errorf("Parse(%q) accepted an invalid payload", tc.body)
			}
		})
	}
}

func TestClientRates(t *testing.T) {
	var gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
	currencies, err := c.Rates(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if gotDate != "2025-01-15" {
		t.Errorf("requested date = %q, want 2025-01-15", gotDate)
	}
	if len(currencies) != 3 {
		t.Errorf("got %d currencies, want 3", len(currencies))
	}
}

func TestClientRates_serverError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	c := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
	if _, err := c.Rates(context.Background(), "2025-01-15"); err == nil {
		t.Error("Rates must fail on a non-200 response")
	}
}
