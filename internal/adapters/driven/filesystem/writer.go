package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
	"github.com/custodia-labs/json-split/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ElementWriter = (*Writer)(nil)

// Writer writes each element to its own file inside a directory.
type Writer struct {
	dir        string
	dirChecked bool
}

// NewWriter creates a writer for dir. An empty dir means the current
// directory. The directory is created on first write if missing.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	if w.dir == "" {
		return "."
	}
	return w.dir
}

// WriteElement writes data to name inside the output directory,
// truncating any existing file.
func (w *Writer) WriteElement(_ context.Context, name string, data []byte) error {
	if !w.dirChecked && w.dir != "" {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrIO, err)
		}
		w.dirChecked = true
	}

	target := w.target(name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	logger.Debug("Wrote %s (%d bytes)", target, len(data))
	return nil
}

// target places name inside the output directory without cleaning it, so
// separators and ".." in an ID are left for the OS to resolve.
func (w *Writer) target(name string) string {
	if w.dir == "" {
		return name
	}
	return w.dir + string(filepath.Separator) + name
}
