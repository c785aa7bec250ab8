package driven

import "github.com/custodia-labs/json-split/internal/core/domain"

// ProgressReporter receives human-readable progress during a split run.
// Output is presentational only and carries no stable format.
type ProgressReporter interface {
	// Begin is called once before the first input file.
	Begin()

	// FileStarted is called before an input file is read.
	FileStarted(path string)

	// ElementWritten is called after an element has been written.
	// duplicate is set when the ID was seen before and the write was tolerated.
	ElementWritten(id string, duplicate bool)

	// Finished is called once after every file was processed successfully.
	Finished(report *domain.SplitReport)
}
