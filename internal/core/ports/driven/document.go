package driven

import (
	"context"

	"github.com/custodia-labs/json-split/internal/core/domain"
)

// DocumentReader loads input documents.
// Backed by the local filesystem.
type DocumentReader interface {
	// ReadDocument reads and parses the JSON document at path.
	// Read failures wrap domain.ErrIO and parse failures wrap domain.ErrParse.
	ReadDocument(ctx context.Context, path string) (domain.Value, error)
}

// ElementWriter stores serialized array elements.
type ElementWriter interface {
	// WriteElement stores data under name, replacing anything already there.
	// Failures wrap domain.ErrIO.
	WriteElement(ctx context.Context, name string, data []byte) error
}
