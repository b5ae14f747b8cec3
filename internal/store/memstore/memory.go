// Package memstore provides an in-memory pattern store for tests and
// other callers that need store semantics without touching the
// filesystem.
package memstore

import (
	"encoding/json"
	"path"
	"sort"
	"sync"

	"github.com/yiblet/gf/internal/store"
)

// MemoryStore is a PatternStore holding encoded records in memory.
// Records are kept as raw JSON so decode behavior (including malformed
// content injected via Put) matches the file-backed store.
type MemoryStore struct {
	mu      sync.RWMutex
	dir     string
	records map[string][]byte
}

var _ store.PatternStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		dir:     ":memory:",
		records: make(map[string][]byte),
	}
}

// Dir returns the virtual store location.
func (s *MemoryStore) Dir() string {
	return s.dir
}

// Path returns the virtual path for a record name.
func (s *MemoryStore) Path(name string) string {
	return path.Join(s.dir, name+".json")
}

// List returns all saved names, sorted for determinism.
func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Create stores a new record, failing if the name is taken.
func (s *MemoryStore) Create(name string, rec *store.Pattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[name]; ok {
		return &store.AlreadyExistsError{Path: s.Path(name)}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	s.records[name] = data

	return nil
}

// Get decodes the record stored under name.
func (s *MemoryStore) Get(name string) (*store.Pattern, error) {
	s.mu.RLock()
	data, ok := s.records[name]
	s.mu.RUnlock()

	if !ok {
		return nil, &store.NotFoundError{Name: name}
	}

	var rec store.Pattern
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &store.MalformedError{Path: s.Path(name), Err: err}
	}

	return &rec, nil
}

// Put injects raw record bytes, overwriting any existing entry. Tests
// use this to simulate hand-edited or corrupted pattern files.
func (s *MemoryStore) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[name] = data
}
