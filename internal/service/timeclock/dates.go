package timeclock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
)

// Date and time tokens arrive in whatever shape the vendor export happened to
// use: day-first or year-first text, or a bare spreadsheet serial number.
// Everything here is a pure function over one token.

var (
	dayFirstRe  = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/.-](\d{1,2})[/.-](\d{1,2})$`)
	clockRe     = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// serialEpoch is day 1 of the spreadsheet serial calendar (1900-01-01).
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// serialDate converts a spreadsheet serial number to a calendar date.
//
// The vendor's files inherit a two-day drift from the historical leap-year
// miscount of the legacy spreadsheet format, so the correction is applied as
// observed in real exports rather than re-derived from the calendar.
func serialDate(serial int) time.Time {
	return serialEpoch.AddDate(0, 0, serial-1-2)
}

// ParseDate parses a heterogeneous date token into a UTC calendar date.
// Accepted shapes: d/m/y, y-m-d, d-m-y (separators / . -) and pure-integer
// spreadsheet serials.
func ParseDate(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, timeclock.ErrInvalidDate
	}

	if serial, err := strconv.Atoi(token); err == nil {
		if serial < 3 || serial > 200000 {
			return time.Time{}, fmt.Errorf("%w: serial %d out of range", timeclock.ErrInvalidDate, serial)
		}
		return serialDate(serial), nil
	}

	var day, month, year int
	if m := dayFirstRe.FindStringSubmatch(token); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else if m := yearFirstRe.FindStringSubmatch(token); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else {
		return time.Time{}, fmt.Errorf("%w: %q", timeclock.ErrInvalidDate, token)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/13 rolls over), so round-trip check.
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q", timeclock.ErrInvalidDate, token)
	}
	return date, nil
}

// ParseClock parses an HH:MM or HH:MM:SS token onto the given base date.
// Empty tokens and the vendor's "-" placeholder mean the clock punch is
// simply absent and yield (nil, nil); a malformed token is ErrInvalidTime and
// the caller decides whether the field was optional.
func ParseClock(token string, base time.Time) (*time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" || token == "-" {
		return nil, nil
	}

	m := clockRe.FindStringSubmatch(token)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", timeclock.ErrInvalidTime, token)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return nil, fmt.Errorf("%w: %q", timeclock.ErrInvalidTime, token)
	}

	instant := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, second, 0, base.Location())
	return &instant, nil
}

func timeFor(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// parseDecimalToken parses a numeric cell, tolerating the locale comma
// decimal separator. Empty and "-" mean absent.
func parseDecimalToken(token string) (*decimal.Decimal, error) {
	token = strings.TrimSpace(token)
	if token == "" || token == "-" {
		return nil, nil
	}
	token = strings.ReplaceAll(token, ",", ".")
	value, err := decimal.NewFromString(token)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
