package gelbook

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("simple object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("b", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"b":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order is stable", func(t *testing.T) {
		tx := Transaction{
			ID: "t1", UserID: "user", Date: MustParse("2025-01-15"),
			CurrencyCode: "USD", CurrencyName: "US Dollar",
			Amount: dec(100), Rate: dec(2.875), Quantity: dec(1),
			ConvertedGEL: dec(287.5),
			Timestamp:    "2025-01-15T10:00:00.000Z",
		}
		got, err := json.Marshal(tx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"id":"t1","userId":"user","date":"2025-01-15","currencyCode":"USD","currencyName":"US Dollar","amount":100,"rate":2.875,"quantity":1,"convertedGEL":287.5,"comment":"","timestamp":"2025-01-15T10:00:00.000Z"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
