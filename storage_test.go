package gelbook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStorage(filepath.Join(dir, "book"))
	if err != nil {
		t.Fatalf("NewDirStorage failed: %v", err)
	}

	var got []string
	if ok, err := s.Get("users", &got); ok || err != nil {
		t.Fatalf("Get on absent key = %v, %v, want false, nil", ok, err)
	}

	want := []string{"a", "b"}
	if err := s.Set("users", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if ok, err := s.Get("users", &got); !ok || err != nil || len(got) != 2 || got[0] != "a" {
		t.Fatalf("Get after Set = %v, %v, %v", got, ok, err)
	}

	if err := s.Remove("users"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if ok, _ := s.Get("users", &got); ok {
		t.Error("key still readable after Remove")
	}
	if err := s.Remove("users"); err != nil {
		t.Errorf("removing an absent key = %v, want nil", err)
	}
}

func TestDirStorage_keys(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStorage failed: %v", err)
	}
	for _, key := range []string{"currencyRates_2025-01-15", "currencyRates_2025-01-14", "users"} {
		if err := s.Set(key, "x"); err != nil {
			t.Fatalf("Set(%q) failed: %v", key, err)
		}
	}

	keys, err := s.Keys("currencyRates_")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "currencyRates_2025-01-14" || keys[1] != "currencyRates_2025-01-15" {
		t.Errorf("Keys(currencyRates_) = %v, want the two rate keys sorted", keys)
	}
}

func TestDirStorage_corruptedValue(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStorage(dir)
	if err != nil {
		t.Fatalf("NewDirStorage failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	var v []string
	if _, err := s.Get("users", &v); err == nil {
		t.Error("Get on a corrupted file must report the error")
	}
}

func TestMemoryStorage_failWrites(t *testing.T) {
	s := NewMemoryStorage()
	if err := s.Set("k", 1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.FailWrites = os.ErrPermission
	if err := s.Set("k", 2); err == nil {
		t.Fatal("Set must fail when FailWrites is armed")
	}
	var v int
	if ok, _ := s.Get("k", &v); !ok || v != 1 {
		t.Errorf("a failed Set must not change the stored value, got %d", v)
	}
}
