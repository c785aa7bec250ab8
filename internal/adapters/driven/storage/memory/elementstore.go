package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/json-split/internal/core/ports/driven"
)

// Ensure ElementStore implements the interface.
var _ driven.ElementWriter = (*ElementStore)(nil)

// ElementStore is an in-memory implementation of driven.ElementWriter.
// It backs dry runs, where nothing may touch the disk.
type ElementStore struct {
	mu       sync.RWMutex
	elements map[string][]byte
	writes   int
}

// NewElementStore creates a new in-memory element store.
func NewElementStore() *ElementStore {
	return &ElementStore{
		elements: make(map[string][]byte),
	}
}

// WriteElement stores data under name, replacing any previous content.
func (s *ElementStore) WriteElement(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements[name] = append([]byte(nil), data...)
	s.writes++
	return nil
}

// Get returns the content stored under name.
func (s *ElementStore) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.elements[name]
	return data, ok
}

// Names returns the stored names in sorted order.
func (s *ElementStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.elements))
	for name := range s.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Writes returns how many times WriteElement was called, overwrites included.
func (s *ElementStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
