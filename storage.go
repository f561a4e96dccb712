package gelbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Storage keys owned by the ledger.
const (
	usersKey        = "users"
	transactionsKey = "transactions"
	ratesKeyPrefix  = "currencyRates_"
)

// Storage is the persistence collaborator: key-value get/set/remove over
// JSON-serializable values. A failing write must be surfaced to the caller,
// never swallowed; the ledger then keeps its last persisted snapshot.
type Storage interface {
	// Get unmarshals the value stored under key into v. It returns false with
	// a nil error when the key is absent.
	Get(key string, v any) (bool, error)
	// Set marshals v and stores it under key.
	Set(key string, v any) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
	// Keys lists the stored keys having the given prefix.
	Keys(prefix string) ([]string, error)
}

// DirStorage persists each key as a <key>.json file in a directory.
type DirStorage struct {
	Dir string
}

// NewDirStorage returns a Storage rooted at dir, creating it if needed.
func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %q: %w", dir, err)
	}
	return &DirStorage{Dir: dir}, nil
}

func (s *DirStorage) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *DirStorage) Get(key string, v any) (bool, error) {
	content, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read %q: %w", key, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return false, fmt.Errorf("corrupted value for %q: %w", key, err)
	}
	return true, nil
}

func (s *DirStorage) Set(key string, v any) error {
	content, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return fmt.Errorf("could not marshal %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), content, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

func (s *DirStorage) Remove(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *DirStorage) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryStorage is an in-memory Storage for tests. FailWrites, when set,
// makes every Set return it, simulating an exhausted quota.
type MemoryStorage struct {
	values     map[string]json.RawMessage
	FailWrites error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]json.RawMessage)}
}

func (s *MemoryStorage) Get(key string, v any) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("corrupted value for %q: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStorage) Set(key string, v any) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	delete(s.values, key)
	return nil
}

func (s *MemoryStorage) Keys(prefix string) ([]string, error) {
	var keys []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// SetRaw seeds a raw JSON value, bypassing marshalling. Test helper for
// corrupted-state scenarios.
func (s *MemoryStorage) SetRaw(key string, raw string) {
	s.values[key] = json.RawMessage(raw)
}
