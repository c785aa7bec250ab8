package driving

import (
	"context"

	"github.com/custodia-labs/json-split/internal/core/domain"
)

// SplitService splits JSON arrays into one file per element.
type SplitService interface {
	// Split runs req to completion. The first failure aborts the run and is
	// returned; files written before it are left in place.
	Split(ctx context.Context, req domain.SplitRequest) (*domain.SplitReport, error)
}
