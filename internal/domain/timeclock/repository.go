package timeclock

import (
	"context"
)

// AttendanceDayRepository is the narrow persistence contract the engine
// writes through. The storage engine behind it is an external collaborator.
type AttendanceDayRepository interface {
	// UpsertDay inserts or updates the day keyed by (EmployeeID, Date).
	// Re-applying the same inputs must leave the stored row unchanged, so
	// a failed batch is always safe to retry.
	UpsertDay(ctx context.Context, day AttendanceDay) error
}
