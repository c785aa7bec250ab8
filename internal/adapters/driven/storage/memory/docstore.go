package memory

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentReader = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentReader.
// Documents are held as raw bytes and parsed on every read.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string][]byte),
	}
}

// Put stores the raw contents of a document under path.
func (s *DocumentStore) Put(path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = append([]byte(nil), content...)
}

// ReadDocument parses the document stored under path.
func (s *DocumentStore) ReadDocument(_ context.Context, path string) (domain.Value, error) {
	s.mu.RLock()
	content, ok := s.documents[path]
	s.mu.RUnlock()
	if !ok {
		return domain.Value{}, fmt.Errorf("%w: read %s: %w", domain.ErrIO, path, os.ErrNotExist)
	}

	v, err := domain.ParseValue(bytes.NewReader(content))
	if err != nil {
		return domain.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
