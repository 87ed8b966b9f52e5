package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the canonical attendance classification for one day.
type DayStatus string

const (
	StatusAbsent          DayStatus = "absent"
	StatusPresentHalf     DayStatus = "present_half"
	StatusPresentFull     DayStatus = "present_full"
	StatusPaidLeave       DayStatus = "paid_leave"
	StatusSickLeave       DayStatus = "sick_leave"
	StatusMeetingFull     DayStatus = "meeting_full"
	StatusWeekendOvertime DayStatus = "weekend_overtime"
)

// RawRecord is one row as a parser saw it: untyped string fields plus the
// source row number for error reporting. It lives only between a parser and
// the normalizer.
type RawRecord struct {
	Row          int
	EmployeeCode string
	EmployeeName string
	DateToken    string
	DayLabel     string
	CheckIn      string
	CheckOut     string
	ShiftCode    string
	WorkFactor   string
	TotalHours   string
	// Extra carries cells whose header matched no vocabulary entry,
	// keyed by the verbatim header text.
	Extra map[string]string
}

// AttendanceRecord is the canonical normalized unit. It is immutable after
// normalization and consumed exactly once by the reconciliation loop.
type AttendanceRecord struct {
	EmployeeCode string
	EmployeeName string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	ShiftCode    string
	WorkFactor   *decimal.Decimal
	TotalHours   *decimal.Decimal
	DayLabel     string
	Row          int
}

// ClassifiedDay is the classification outcome for one attendance record.
// OvertimeHours is always zero when Status is StatusAbsent.
type ClassifiedDay struct {
	Status        DayStatus
	OvertimeHours decimal.Decimal
}

// AttendanceDay is the persisted entity, keyed by (EmployeeID, Date).
// Re-applying the same day through the repository must be a no-op in effect.
type AttendanceDay struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        DayStatus
	OvertimeHours decimal.Decimal
	ShiftLabel    string
	CheckIn       *time.Time
	CheckOut      *time.Time
	ImportedBy    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
