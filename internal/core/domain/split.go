package domain

// SplitRequest describes one split run.
type SplitRequest struct {
	// ArrayPath locates the array to split in every input document.
	ArrayPath DottedPath

	// IDPath locates the ID string inside each array element.
	IDPath DottedPath

	// Pretty selects indented output instead of compact output.
	Pretty bool

	// AllowCollisions lets duplicate IDs overwrite earlier files with a
	// warning instead of aborting the run.
	AllowCollisions bool

	// Files are the input documents, processed in order.
	Files []string
}

// Validate checks that the request can be run.
// Empty paths are valid and resolve to the value they are applied to.
func (r *SplitRequest) Validate() error {
	if len(r.Files) == 0 {
		return &RequestError{Field: "input files", Reason: "at least one is required"}
	}
	return nil
}

// RequestError reports an unusable SplitRequest.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Field + " " + e.Reason
}

func (e *RequestError) Unwrap() error { return ErrInvalidInput }

// SplitReport summarises a finished split run.
type SplitReport struct {
	// FilesRead is the number of input documents processed.
	FilesRead int

	// Written lists output file names in write order. A name appears
	// again each time a tolerated duplicate overwrites it.
	Written []string

	// Duplicates lists IDs that were seen more than once, in the order
	// the duplicates were met.
	Duplicates []string
}

// IDSet records every element ID processed during a run.
// It spans all input files and never shrinks.
type IDSet struct {
	ids map[string]struct{}
}

// NewIDSet creates an empty set.
func NewIDSet() *IDSet {
	return &IDSet{ids: make(map[string]struct{})}
}

// Has reports whether id was added before.
func (s *IDSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add records id.
func (s *IDSet) Add(id string) {
	s.ids[id] = struct{}{}
}

// Len returns the number of distinct IDs.
func (s *IDSet) Len() int { return len(s.ids) }
