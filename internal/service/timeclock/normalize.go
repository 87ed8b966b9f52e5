package timeclock

import (
	"fmt"
	"strings"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
)

// normalizeRecord converts one raw parser row into a canonical attendance
// record. Date and code problems are per-row errors; clock and numeric cells
// are optional, so unparsable values simply become absent.
func normalizeRecord(raw timeclock.RawRecord, period timeclock.Period) (timeclock.AttendanceRecord, error) {
	code := strings.TrimSpace(raw.EmployeeCode)
	if code == "" {
		return timeclock.AttendanceRecord{}, timeclock.ErrMissingCode
	}

	date, err := ParseDate(raw.DateToken)
	if err != nil {
		return timeclock.AttendanceRecord{}, err
	}
	if period.Month != 0 && period.Year != 0 {
		if int(date.Month()) != period.Month || date.Year() != period.Year {
			return timeclock.AttendanceRecord{}, fmt.Errorf("%w: %s not in %02d/%04d",
				timeclock.ErrOutsideResolvedPeriod, date.Format("2006-01-02"), period.Month, period.Year)
		}
	}

	record := timeclock.AttendanceRecord{
		EmployeeCode: code,
		EmployeeName: strings.TrimSpace(raw.EmployeeName),
		Date:         date,
		ShiftCode:    strings.TrimSpace(raw.ShiftCode),
		DayLabel:     strings.TrimSpace(raw.DayLabel),
		Row:          raw.Row,
	}

	// Clock punches are optional everywhere; a garbled token reads as a
	// missing punch, not a row failure.
	if in, err := ParseClock(raw.CheckIn, date); err == nil {
		record.CheckIn = in
	}
	if out, err := ParseClock(raw.CheckOut, date); err == nil {
		record.CheckOut = out
	}

	if factor, err := parseDecimalToken(raw.WorkFactor); err == nil {
		record.WorkFactor = factor
	}
	if hours, err := parseDecimalToken(raw.TotalHours); err == nil {
		record.TotalHours = hours
	}

	return record, nil
}
