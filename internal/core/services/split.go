package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
	"github.com/custodia-labs/json-split/internal/core/ports/driving"
	"github.com/custodia-labs/json-split/internal/logger"
)

// Ensure SplitService implements the interface.
var _ driving.SplitService = (*SplitService)(nil)

// SplitService drives a split run: read each input, resolve the array,
// resolve each element's ID, check collisions and write the element.
type SplitService struct {
	reader   driven.DocumentReader
	writer   driven.ElementWriter
	progress driven.ProgressReporter
}

// NewSplitService creates a new split service.
// progress is optional; nil discards progress events.
func NewSplitService(
	reader driven.DocumentReader,
	writer driven.ElementWriter,
	progress driven.ProgressReporter,
) *SplitService {
	if progress == nil {
		progress = nopProgress{}
	}
	return &SplitService{
		reader:   reader,
		writer:   writer,
		progress: progress,
	}
}

// Split processes req.Files in order with one IDSet shared by all of them,
// so an ID repeated in a later file collides with the earlier one.
//
// The first failure stops the run. The returned report is never nil and
// describes the work done up to that point.
func (s *SplitService) Split(ctx context.Context, req domain.SplitRequest) (*domain.SplitReport, error) {
	report := &domain.SplitReport{}

	if err := req.Validate(); err != nil {
		return report, err
	}

	logger.Section("Split")
	logger.Debug("Array path: %q, ID path: %q", req.ArrayPath, req.IDPath)
	logger.Debug("Pretty: %t, allow collisions: %t, files: %d", req.Pretty, req.AllowCollisions, len(req.Files))

	seen := domain.NewIDSet()
	s.progress.Begin()

	for _, path := range req.Files {
		if err := s.splitFile(ctx, &req, path, seen, report); err != nil {
			return report, err
		}
		report.FilesRead++
	}

	logger.Info("Split %d file(s) into %d element(s), %d distinct ID(s), %d duplicate(s)",
		report.FilesRead, len(report.Written), seen.Len(), len(report.Duplicates))
	s.progress.Finished(report)
	return report, nil
}

func (s *SplitService) splitFile(
	ctx context.Context,
	req *domain.SplitRequest,
	path string,
	seen *domain.IDSet,
	report *domain.SplitReport,
) error {
	s.progress.FileStarted(path)

	doc, err := s.reader.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	found, err := req.ArrayPath.Resolve(doc)
	if err != nil {
		return fmt.Errorf("%s: array path: %w", path, err)
	}

	elements, err := found.AsArray()
	if err != nil {
		return fmt.Errorf("%s: array path %q: %w", path, req.ArrayPath, err)
	}
	logger.Debug("%s: %d element(s) at %q", path, len(elements), req.ArrayPath)

	for i, elem := range elements {
		id, err := elementID(req.IDPath, elem)
		if err != nil {
			return fmt.Errorf("%s: element %d: %w", path, i, err)
		}

		duplicate := seen.Has(id)
		if duplicate && !req.AllowCollisions {
			return &domain.CollisionError{ID: id, File: path}
		}

		name := domain.OutputFilename(req.ArrayPath.String(), req.IDPath.String(), id)
		data, err := domain.MarshalValue(elem, req.Pretty)
		if err != nil {
			return fmt.Errorf("%s: element %d: %w", path, i, err)
		}
		if err := s.writer.WriteElement(ctx, name, data); err != nil {
			return err
		}
		seen.Add(id)

		report.Written = append(report.Written, name)
		if duplicate {
			report.Duplicates = append(report.Duplicates, id)
			logger.Warn("%s: duplicate ID %q overwrote %s", path, id, name)
		}
		s.progress.ElementWritten(id, duplicate)
	}

	return nil
}

// elementID resolves the ID path within one array element.
func elementID(idPath domain.DottedPath, elem domain.Value) (string, error) {
	v, err := idPath.Resolve(elem)
	if err != nil {
		return "", fmt.Errorf("ID path: %w", err)
	}
	id, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("ID path %q: %w", idPath, err)
	}
	return id, nil
}

type nopProgress struct{}

func (nopProgress) Begin() {}
func (nopProgress) FileStarted(string) {}
func (nopProgress) ElementWritten(string, bool) {}
func (nopProgress) Finished(*domain.SplitReport) {}
