package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
	"github.com/custodia-labs/json-split/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader reads JSON documents from local files.
type Reader struct{}

// NewReader creates a filesystem document reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument opens path and parses its whole content as one JSON document.
func (r *Reader) ReadDocument(_ context.Context, path string) (domain.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Value{}, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.Value{}, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	if info.IsDir() {
		return domain.Value{}, fmt.Errorf("%w: %s is a directory", domain.ErrIO, path)
	}
	logger.Debug("Reading %s (%d bytes)", path, info.Size())

	v, err := domain.ParseValue(bufio.NewReader(f))
	if err != nil {
		return domain.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
