package timeclock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openhris/timeclock-import-go/internal/domain/timeclock"
	"github.com/openhris/timeclock-import-go/internal/pkg/textfold"
)

// Shift-code markers, evaluated in priority order; the first hit wins.
// Matching is case- and diacritic-insensitive; multi-character markers match
// as substrings, single characters must match the whole code so that e.g.
// "họp" is never read as the sick marker "ô".
type shiftRuleKind int

const (
	ruleAbsent shiftRuleKind = iota
	rulePaidLeave
	ruleSickLeave
	ruleMeeting
	ruleAdminFull
)

type shiftRule struct {
	markers []string
	kind    shiftRuleKind
}

var shiftRules = []shiftRule{
	{markers: []string{"vang", "kl", "v"}, kind: ruleAbsent},
	{markers: []string{"phep", "np", "p"}, kind: rulePaidLeave},
	{markers: []string{"om", "o"}, kind: ruleSickLeave},
	{markers: []string{"hop", "h"}, kind: ruleMeeting},
	{markers: []string{"hanh chinh", "hc", "x"}, kind: ruleAdminFull},
}

func matchShiftRule(code string) (shiftRuleKind, bool) {
	folded := textfold.Fold(code)
	for _, rule := range shiftRules {
		for _, marker := range rule.markers {
			if len([]rune(marker)) == 1 {
				if folded == marker {
					return rule.kind, true
				}
			} else if textfold.Contains(folded, marker) {
				return rule.kind, true
			}
		}
	}
	return 0, false
}

// classifier derives a canonical day status plus overtime hours from one
// normalized record. Pure; all tunables are injected at construction.
type classifier struct {
	weekendLabels map[string]bool
	dayHours      decimal.Decimal
}

func newClassifier(weekendLabels []string, standardDayHours int) *classifier {
	labels := make(map[string]bool, len(weekendLabels))
	for _, l := range weekendLabels {
		labels[textfold.Fold(l)] = true
	}
	return &classifier{
		weekendLabels: labels,
		dayHours:      decimal.NewFromInt(int64(standardDayHours)),
	}
}

func (c *classifier) isWeekend(dayLabel string) bool {
	return c.weekendLabels[textfold.Fold(dayLabel)]
}

// Classify applies the cascade: explicit shift annotation, then work-factor,
// then total hours, then the clock delta. Warnings flag judgment calls; they
// are not failures.
func (c *classifier) Classify(rec timeclock.AttendanceRecord) (timeclock.ClassifiedDay, []string) {
	var warnings []string

	worked, hasWorked := workedHours(rec.CheckIn, rec.CheckOut)

	status, statusKnown := timeclock.DayStatus(""), false

	if rec.ShiftCode != "" {
		if kind, ok := matchShiftRule(rec.ShiftCode); ok {
			switch kind {
			case ruleAbsent:
				status = timeclock.StatusAbsent
			case rulePaidLeave:
				status = timeclock.StatusPaidLeave
			case ruleSickLeave:
				status = timeclock.StatusSickLeave
			case ruleMeeting:
				status = timeclock.StatusMeetingFull
			case ruleAdminFull:
				switch {
				case !hasWorked:
					status = timeclock.StatusPresentFull
				case worked.GreaterThanOrEqual(decimal.NewFromInt(7)):
					status = timeclock.StatusPresentFull
				case worked.GreaterThanOrEqual(decimal.NewFromInt(2)):
					status = timeclock.StatusPresentHalf
				default:
					status = timeclock.StatusAbsent
					warnings = append(warnings, "administrative shift with under 2 worked hours, marked absent")
				}
			}
			statusKnown = true
		}
	}

	if !statusKnown && rec.WorkFactor != nil {
		value := *rec.WorkFactor
		switch {
		case value.IsZero():
			status = timeclock.StatusAbsent
		case value.IsPositive() && !hasWorked && c.isWeekend(rec.DayLabel):
			// Grid-format rule: a work-value on a weekend day is paid
			// overtime, converted at the standard day length instead of
			// a clock delta. Kept separate from the generic formula.
			return timeclock.ClassifiedDay{
				Status:        timeclock.StatusWeekendOvertime,
				OvertimeHours: value.Mul(c.dayHours),
			}, warnings
		case value.LessThan(decimal.NewFromFloat(0.5)):
			status = timeclock.StatusPresentHalf
		default:
			status = timeclock.StatusPresentFull
		}
		statusKnown = true
	}

	if !statusKnown && rec.TotalHours != nil {
		hours := *rec.TotalHours
		switch {
		case hours.IsZero():
			status = timeclock.StatusAbsent
		case hours.LessThan(decimal.NewFromInt(4)):
			status = timeclock.StatusPresentHalf
		default:
			status = timeclock.StatusPresentFull
		}
		statusKnown = true
	}

	if !statusKnown {
		switch {
		case rec.CheckIn == nil && rec.CheckOut == nil:
			status = timeclock.StatusAbsent
			warnings = append(warnings, "no check-in or check-out recorded, marked absent")
		case rec.CheckIn == nil || rec.CheckOut == nil:
			status = timeclock.StatusPresentHalf
			warnings = append(warnings, "only one clock punch recorded, marked half-day")
		case worked.GreaterThanOrEqual(decimal.NewFromInt(6)):
			status = timeclock.StatusPresentFull
		case worked.GreaterThanOrEqual(decimal.NewFromInt(3)):
			status = timeclock.StatusPresentHalf
		default:
			status = timeclock.StatusPresentHalf
			warnings = append(warnings, "too few worked hours, marked half-day")
		}
	}

	overtime := decimal.Zero
	if status != timeclock.StatusAbsent && hasWorked {
		if extra := worked.Sub(c.dayHours); extra.IsPositive() {
			overtime = extra
		}
	}

	return timeclock.ClassifiedDay{Status: status, OvertimeHours: overtime}, warnings
}

// workedHours returns the clock delta in hours. Overnight shifts wrap.
func workedHours(in, out *time.Time) (decimal.Decimal, bool) {
	if in == nil || out == nil {
		return decimal.Zero, false
	}
	minutes := out.Sub(*in).Minutes()
	if minutes < 0 {
		minutes += 24 * 60
	}
	return decimal.NewFromFloat(minutes / 60).Round(4), true
}
