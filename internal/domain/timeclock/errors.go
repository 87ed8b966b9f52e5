package timeclock

import "errors"

// Timeclock import domain errors
var (
	// Fatal for the whole batch: no parser recognized the layout, nothing
	// was written.
	ErrUnrecognizedLayout = errors.New("no parser recognized the file layout")

	// Per-row errors: recorded in the report, processing continues.
	ErrInvalidDate           = errors.New("invalid date token")
	ErrInvalidTime           = errors.New("invalid time token")
	ErrMissingCode           = errors.New("row has no employee code")
	ErrOutsideResolvedPeriod = errors.New("date falls outside the reporting period")
)
