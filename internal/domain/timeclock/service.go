package timeclock

import (
	"context"
)

// ImportService defines the batch entry points of the import engine.
type ImportService interface {
	// Import runs the full batch: detect, parse, normalize, resolve,
	// classify and persist. It returns a report even when individual rows
	// fail; the only fatal error below request validation is
	// ErrUnrecognizedLayout.
	Import(ctx context.Context, req ImportRequest) (ImportReport, error)

	// Preview runs the same pipeline without writing anything, so a file
	// can be vetted before committing.
	Preview(ctx context.Context, req ImportRequest) (ImportReport, error)
}
